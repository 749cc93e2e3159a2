package game

import (
	"fmt"

	"github.com/ThoseGrapefruits/pacman/internal/menu"
)

// Menu titles.
const (
	MainMenuTitle  = "PACMAN"
	PauseMenuTitle = "PAUSED"
	ControlsTitle  = "Controls"
)

var controlLines = []string{
	"Arrows  move",
	"Esc     pause / back",
	"Enter   select",
	"Ctrl+C  quit",
}

type menus struct {
	tree  *menu.Tree
	main  menu.Handle
	pause menu.Handle
}

func buildMenus() (menus, error) {
	tree := menu.NewTree()

	b, err := menu.NewBuilder()
	if err != nil {
		return menus{}, err
	}
	main, err := b.Title(MainMenuTitle).Items(tree.Leaf("New game", menu.ActionRestart)).Build(tree)
	if err != nil {
		return menus{}, fmt.Errorf("game: main menu: %w", err)
	}
	if err := addControls(tree, main); err != nil {
		return menus{}, err
	}
	if err := tree.AddItem(main, tree.Leaf("Quit", menu.ActionQuit)); err != nil {
		return menus{}, err
	}

	pb, err := menu.NewBuilderOfKind(menu.KindPauseMenu)
	if err != nil {
		return menus{}, err
	}
	pause, err := pb.Title(PauseMenuTitle).
		Items(tree.Leaf("Resume", menu.ActionResume), tree.Leaf("Restart", menu.ActionRestart)).
		Parent(main).
		Build(tree)
	if err != nil {
		return menus{}, fmt.Errorf("game: pause menu: %w", err)
	}
	if err := addControls(tree, pause); err != nil {
		return menus{}, err
	}
	if err := tree.AddItem(pause, tree.Leaf("Quit", menu.ActionQuit)); err != nil {
		return menus{}, err
	}

	return menus{tree: tree, main: main, pause: pause}, nil
}

// addControls attaches a Controls submenu to parent.
func addControls(tree *menu.Tree, parent menu.Handle) error {
	b, err := menu.NewBuilderOfKind(menu.KindSubMenu)
	if err != nil {
		return err
	}
	for _, line := range controlLines {
		b.Items(tree.Leaf(line, menu.ActionNone))
	}
	if _, err := b.Title(ControlsTitle).Parent(parent).Build(tree); err != nil {
		return fmt.Errorf("game: controls menu: %w", err)
	}
	return nil
}
