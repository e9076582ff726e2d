// Command atlasd serves generated worlds over HTTP: JSON snapshots and PNG
// renders on plain endpoints, plus a WebSocket channel that generates a
// fresh world per request message.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strconv"

	"cartogen/internal/render"
	"cartogen/internal/worldgen"

	"github.com/gorilla/websocket"
)

const (
	maxMapWidth  = 1024
	maxMapHeight = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// worldRequest is one generation order, from query params or a WS message.
type worldRequest struct {
	Seed   uint32  `json:"seed"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Rivers float64 `json:"rivers"`
	Cities float64 `json:"cities"`
	Land   float64 `json:"land"`
}

func defaultRequest() worldRequest {
	d := worldgen.DefaultSettings()
	return worldRequest{
		Seed:   42,
		Width:  320,
		Height: 240,
		Rivers: d.RiverDensity,
		Cities: d.CityDensity,
		Land:   d.LandPercentage,
	}
}

// clamp bounds the dimensions so a single request cannot exhaust the host.
func (r *worldRequest) clamp() {
	if r.Width < 1 {
		r.Width = 1
	}
	if r.Height < 1 {
		r.Height = 1
	}
	if r.Width > maxMapWidth {
		r.Width = maxMapWidth
	}
	if r.Height > maxMapHeight {
		r.Height = maxMapHeight
	}
}

func (r worldRequest) settings() worldgen.Settings {
	return worldgen.Settings{
		RiverDensity:   r.Rivers,
		CityDensity:    r.Cities,
		LandPercentage: r.Land,
	}.Clamp()
}

func (r worldRequest) generate() *worldgen.WorldMap {
	return worldgen.Generate(r.Seed, r.settings(), r.Width, r.Height)
}

// fromQuery overlays any present query parameters onto the request.
func (r *worldRequest) fromQuery(req *http.Request) {
	q := req.URL.Query()
	if v, err := strconv.ParseUint(q.Get("seed"), 10, 32); err == nil {
		r.Seed = uint32(v)
	}
	if v, err := strconv.Atoi(q.Get("width")); err == nil {
		r.Width = v
	}
	if v, err := strconv.Atoi(q.Get("height")); err == nil {
		r.Height = v
	}
	if v, err := strconv.ParseFloat(q.Get("rivers"), 64); err == nil {
		r.Rivers = v
	}
	if v, err := strconv.ParseFloat(q.Get("cities"), 64); err == nil {
		r.Cities = v
	}
	if v, err := strconv.ParseFloat(q.Get("land"), 64); err == nil {
		r.Land = v
	}
}

func handleWorldJSON(w http.ResponseWriter, req *http.Request) {
	r := defaultRequest()
	r.fromQuery(req)
	r.clamp()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(r.generate()); err != nil {
		log.Printf("encoding world: %v", err)
	}
}

func handleWorldPNG(w http.ResponseWriter, req *http.Request) {
	r := defaultRequest()
	r.fromQuery(req)
	r.clamp()

	mode := render.ModeBiome
	if req.URL.Query().Get("layer") == "elevation" {
		mode = render.ModeElevation
	}

	w.Header().Set("Content-Type", "image/png")
	if err := render.WritePNG(w, r.generate(), mode); err != nil {
		log.Printf("rendering world: %v", err)
	}
}

// handleWS pushes a default world on connect, then generates one world per
// incoming JSON request message and writes the snapshot back.
func handleWS(w http.ResponseWriter, req *http.Request) {
	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(defaultRequest().generate()); err != nil {
		log.Printf("websocket write: %v", err)
		return
	}

	for {
		r := defaultRequest()
		if err := conn.ReadJSON(&r); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("websocket read: %v", err)
			}
			return
		}
		r.clamp()

		if err := conn.WriteJSON(r.generate()); err != nil {
			log.Printf("websocket write: %v", err)
			return
		}
	}
}

const homePage = `<!DOCTYPE html>
<html>
<head><title>cartogen atlasd</title></head>
<body style="font-family: sans-serif; text-align: center">
<h1>cartogen</h1>
<p><img id="map" src="/world.png" alt="world map"></p>
<p><button onclick="reseed()">Regenerate</button></p>
<script>
function reseed() {
  const seed = Math.floor(Math.random() * 4294967296);
  document.getElementById('map').src = '/world.png?seed=' + seed;
}
</script>
</body>
</html>
`

func handleHome(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		http.NotFound(w, req)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(homePage)); err != nil {
		log.Printf("serving home: %v", err)
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/world.json", handleWorldJSON)
	mux.HandleFunc("/world.png", handleWorldPNG)
	mux.HandleFunc("/ws", handleWS)

	log.Printf("atlasd listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
