package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/gravwell/walls"
)

// Default background dither rows; a level can override them with the
// backgr1/backgr2 map properties.
const (
	DefaultBackgr1 = 0xAAAA
	DefaultBackgr2 = 0x5555
)

// Load parses a TMX file and returns the level data. Walls come from the
// polyline objects of the "walls" object group; every polyline segment must
// run at one of the eight canonical headings or the load fails. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		WorldWidth:  m.Width * m.TileWidth,
		WorldHeight: m.Height * m.TileHeight,
		Backgr1:     DefaultBackgr1,
		Backgr2:     DefaultBackgr2,
	}
	if m.Properties != nil {
		if v := m.Properties.GetInt("backgr1"); v != 0 {
			lvl.Backgr1 = uint16(v)
		}
		if v := m.Properties.GetInt("backgr2"); v != 0 {
			lvl.Backgr2 = uint16(v)
		}
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "walls":
			for _, o := range og.Objects {
				kind, err := parseKind(o.Properties.GetString("kind"))
				if err != nil {
					return nil, fmt.Errorf("%s: object %d: %w", tmxPath, o.ID, err)
				}
				for _, pl := range o.PolyLines {
					if pl.Points == nil {
						continue
					}
					pts := *pl.Points
					for i := 0; i+1 < len(pts); i++ {
						spec, err := segment(
							int(o.X+pts[i].X), int(o.Y+pts[i].Y),
							int(o.X+pts[i+1].X), int(o.Y+pts[i+1].Y),
							kind)
						if err != nil {
							return nil, fmt.Errorf("%s: object %d: %w", tmxPath, o.ID, err)
						}
						lvl.Walls = append(lvl.Walls, spec)
					}
				}
			}
		case "spawn":
			if len(og.Objects) > 0 {
				lvl.SpawnX = int(og.Objects[0].X)
				lvl.SpawnY = int(og.Objects[0].Y)
			}
		}
	}

	if len(lvl.Walls) == 0 {
		return nil, fmt.Errorf("%s: no walls object group with polylines", tmxPath)
	}
	return lvl, nil
}

// LoadAll discovers all .tmx files in levelsDir, loads each, and returns
// them sorted by name.
func LoadAll(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, path := range matches {
		lvl, err := Load(fsys, path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

func parseKind(s string) (walls.Kind, error) {
	switch s {
	case "", "normal":
		return walls.KindNormal, nil
	case "bounce":
		return walls.KindBounce, nil
	case "ghost":
		return walls.KindGhost, nil
	}
	return 0, fmt.Errorf("unknown wall kind %q", s)
}

// segment normalizes one polyline edge so it runs south-through-NNE and
// classifies its heading. Only the eight canonical slopes are legal: the
// renderer's pattern tables have no entries for anything else.
func segment(x1, y1, x2, y2 int, kind walls.Kind) (walls.Spec, error) {
	if x2 < x1 || (x2 == x1 && y2 < y1) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	dx, dy := x2-x1, y2-y1

	var dir walls.Direction
	switch {
	case dx == 0 && dy > 0:
		dir = walls.DirS
	case dy > 0 && dy == 2*dx:
		dir = walls.DirSSE
	case dy > 0 && dy == dx:
		dir = walls.DirSE
	case dy > 0 && dx == 2*dy:
		dir = walls.DirESE
	case dy == 0 && dx > 0:
		dir = walls.DirE
	case dy < 0 && dx == -2*dy:
		dir = walls.DirENE
	case dy < 0 && dx == -dy:
		dir = walls.DirNE
	case dy < 0 && -dy == 2*dx:
		dir = walls.DirNNE
	default:
		return walls.Spec{}, fmt.Errorf("segment (%d,%d)-(%d,%d) is not a canonical wall heading", x1, y1, x2, y2)
	}

	return walls.Spec{Kind: kind, Dir: dir, X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
}
