package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Open creates and initializes the process screen with mouse motion and focus reporting
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := Prepare(screen); err != nil {
		return nil, err
	}
	return screen, nil
}

// Prepare initializes screen for the field; split from Open so tests can pass a simulation screen
func Prepare(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	return nil
}
