package maze

import "github.com/ThoseGrapefruits/pacman/internal/registry"

// DefaultLayout is the layout used when no other is configured.
const DefaultLayout = "classic"

var classicRows = []string{
	"############################",
	"#o...........##...........o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"     #.##          ##.#     ",
	"######.## ###  ### ##.######",
	"#........ #GG  GG# ........#",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......P........##..o#",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

var smallRows = []string{
	"###################",
	"#o.......#.......o#",
	"#.##.###.#.###.##.#",
	"#.................#",
	"#.##.#.#####.#.##.#",
	"#....#...#...#....#",
	"####.### # ###.####",
	"####.#  GGGG #.####",
	"####.# ##### #.####",
	"#........P........#",
	"#.##.###.#.###.##.#",
	"#o.#...........#.o#",
	"##.#.#.#####.#.#.##",
	"#....#...#...#....#",
	"#.######.#.######.#",
	"#.................#",
	"###################",
}

func init() {
	registry.Register(registry.Layout{
		ID:    "classic",
		Title: "Classic",
		Rows:  classicRows,
	})
	registry.Register(registry.Layout{
		ID:    "small",
		Title: "Small",
		Rows:  smallRows,
	})
}
