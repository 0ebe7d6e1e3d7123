package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jakecoffman/cp"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/topdown/geom"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/sim"
)

// roomgen previews room layouts without launching the game. It runs the
// same placement the world runs, so what it prints is what a run with the
// same seed produces.

const previewCols = 96

func main() {
	log.SetFlags(0)

	room := flag.String("room", "", "room to lay out")
	seed := flag.Uint64("seed", 0, "run seed (0 draws one from the clock)")
	all := flag.Bool("all", false, "lay out every room")
	format := flag.String("format", "ascii", "output format: ascii or yaml")
	copyOut := flag.Bool("copy", false, "also copy the output to the clipboard")
	flag.Parse()

	rooms, err := loadRooms()
	if err != nil {
		log.Fatalf("roomgen: %v", err)
	}

	runSeed := *seed
	if runSeed == 0 {
		runSeed = rand.New(rand.NewSource(time.Now().UnixNano())).Uint64()
	}

	var names []string
	switch {
	case *all:
		for name := range rooms {
			names = append(names, name)
		}
		sort.Strings(names)
	case *room != "":
		if _, ok := rooms[*room]; !ok {
			log.Fatalf("roomgen: unknown room %q", *room)
		}
		names = []string{*room}
	default:
		flag.Usage()
		os.Exit(2)
	}

	var b strings.Builder
	for _, name := range names {
		rc := rooms[name]
		layout := sim.LayoutRoom(rc, runSeed)
		switch *format {
		case "ascii":
			writeASCII(&b, rc, runSeed, layout)
		case "yaml":
			if err := writeYAML(&b, rc, runSeed, layout); err != nil {
				log.Fatalf("roomgen: %s: %v", name, err)
			}
		default:
			log.Fatalf("roomgen: unknown format %q", *format)
		}
	}

	out := b.String()
	fmt.Print(out)

	if *copyOut {
		if err := clipboard.Init(); err != nil {
			log.Fatalf("roomgen: clipboard: %v", err)
		}
		clipboard.Write(clipboard.FmtText, []byte(out))
	}
}

// loadRooms builds the room graph with a nil guard compiler; guards do not
// affect layout and keeping them out spares the tool the script engine.
func loadRooms() (map[string]sim.RoomConfig, error) {
	hostiles, err := prefabs.LoadHostilesSpec()
	if err != nil {
		return nil, err
	}
	archetypes, err := prefabs.BuildArchetypes(hostiles)
	if err != nil {
		return nil, err
	}
	roomsSpec, err := prefabs.LoadRoomsSpec()
	if err != nil {
		return nil, err
	}
	return prefabs.BuildRooms(roomsSpec, archetypes, nil)
}

// writeASCII renders the room as a character grid: '#' obstacle, 'h'
// hostile, 'D' door, '@' actor spawn.
func writeASCII(b *strings.Builder, rc sim.RoomConfig, seed uint64, layout sim.RoomLayout) {
	cellW := rc.Bounds.W / previewCols
	cellH := cellW * 2 // terminal cells are roughly twice as tall as wide
	rows := int(math.Ceil(rc.Bounds.H / cellH))
	if rows < 1 {
		rows = 1
	}

	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, previewCols)
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}

	stamp := func(r geom.Rect, ch rune) {
		x0, y0 := int(r.X/cellW), int(r.Y/cellH)
		x1, y1 := int(r.MaxX()/cellW), int(r.MaxY()/cellH)
		for y := y0; y <= y1; y++ {
			if y < 0 || y >= rows {
				continue
			}
			for x := x0; x <= x1; x++ {
				if x < 0 || x >= previewCols {
					continue
				}
				grid[y][x] = ch
			}
		}
	}
	mark := func(p cp.Vector, ch rune) {
		x, y := int(p.X/cellW), int(p.Y/cellH)
		if x >= 0 && x < previewCols && y >= 0 && y < rows {
			grid[y][x] = ch
		}
	}

	for _, o := range layout.Obstacles {
		stamp(o, '#')
	}
	for _, h := range layout.Hostiles {
		stamp(h.Rect, 'h')
	}
	for _, d := range rc.Doors {
		mark(d.Pos, 'D')
	}
	mark(rc.Spawn, '@')

	fmt.Fprintf(b, "%s  %.0fx%.0f  room seed %d  obstacles %d  hostiles %d\n",
		rc.Name, rc.Bounds.W, rc.Bounds.H,
		sim.RoomSeed(rc.Name, seed), len(layout.Obstacles), len(layout.Hostiles))
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

type rectDump struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type hostileDump struct {
	Archetype string   `yaml:"archetype"`
	Rect      rectDump `yaml:"rect"`
}

type doorDump struct {
	Label string  `yaml:"label"`
	To    string  `yaml:"to"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

type layoutDump struct {
	Room      string        `yaml:"room"`
	Seed      uint64        `yaml:"seed"`
	RoomSeed  uint64        `yaml:"room_seed"`
	Obstacles []rectDump    `yaml:"obstacles"`
	Hostiles  []hostileDump `yaml:"hostiles"`
	Doors     []doorDump    `yaml:"doors,omitempty"`
}

func writeYAML(b *strings.Builder, rc sim.RoomConfig, seed uint64, layout sim.RoomLayout) error {
	dump := layoutDump{
		Room:     rc.Name,
		Seed:     seed,
		RoomSeed: sim.RoomSeed(rc.Name, seed),
	}
	for _, o := range layout.Obstacles {
		dump.Obstacles = append(dump.Obstacles, rectDump{X: o.X, Y: o.Y, W: o.W, H: o.H})
	}
	for _, h := range layout.Hostiles {
		dump.Hostiles = append(dump.Hostiles, hostileDump{
			Archetype: h.Archetype.Name,
			Rect:      rectDump{X: h.Rect.X, Y: h.Rect.Y, W: h.Rect.W, H: h.Rect.H},
		})
	}
	for _, d := range rc.Doors {
		dump.Doors = append(dump.Doors, doorDump{Label: d.Label, To: d.To, X: d.Pos.X, Y: d.Pos.Y})
	}

	out, err := yaml.Marshal(dump)
	if err != nil {
		return err
	}
	b.WriteString("---\n")
	b.Write(out)
	return nil
}
