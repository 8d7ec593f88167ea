// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelui-demo/main.go
// Summary: Terminal demo of the layout core: wrapped, scrollable text and buttons.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/framegrace/texelui/config"
	"github.com/framegrace/texelui/core"
	"github.com/framegrace/texelui/scroll"
	"github.com/framegrace/texelui/theme"
	"github.com/framegrace/texelui/widgets"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

type demoState struct {
	presses int
}

func main() {
	configPath := flag.String("config", "", "config file (.json or .toml); defaults to the user config")
	file := flag.String("file", "", "text file to display")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf("texelui-demo: stdout is not a terminal")
	}

	if *configPath != "" {
		cfg, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("texelui-demo: %v", err)
		}
		config.SetSystem(cfg)
		theme.Set(theme.Load(cfg))
	}

	text := sampleText()
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("texelui-demo: %v", err)
		}
		text = string(data)
	}

	if err := run(text); err != nil {
		log.Fatalf("texelui-demo: %v", err)
	}
}

func run(text string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	state := &demoState{}
	ui := core.NewUIManager(state)
	ui.SetRoot(buildRoot(text))
	ui.AddGlobalCallback(tcell.KeyRune, 'q', func(ctx *core.Context) { ctx.Quit() })
	ui.AddGlobalCallback(tcell.KeyEscape, 0, func(ctx *core.Context) { ctx.Quit() })
	return ui.Run(screen)
}

func buildRoot(text string) core.View {
	title := widgets.NewTextView("texelui demo. Tab moves focus, arrows and PgUp/PgDn scroll, q quits.").Center()
	title.SetScrollable(false)

	body := widgets.NewTextView(text)

	status := widgets.NewTextView("Button not pressed yet.")
	status.SetScrollable(false)

	press := widgets.NewButton("Press", func(ctx *core.Context) {
		st := ctx.App.(*demoState)
		st.presses++
		status.SetContent(fmt.Sprintf("Button pressed %d time(s).", st.presses))
	})
	quit := widgets.NewButton("Quit", func(ctx *core.Context) { ctx.Quit() })

	scrollable := widgets.NewCheckbox("Scrollable body", func(ctx *core.Context, checked bool) {
		body.SetScrollable(checked)
		ctx.Relayout()
	})
	scrollable.SetChecked(body.IsScrollable())

	notes := scroll.NewPane(widgets.NewTextView(strings.Repeat("Scroll pane line.\n", 30)))

	root := widgets.NewStack(
		title,
		widgets.NewBorder(body),
		widgets.NewBorder(notes),
		status,
		scrollable,
		press,
		quit,
	)
	root.SetTrapsFocus(true)
	return root
}

func sampleText() string {
	para := "The layout core negotiates sizes in two passes. Every view is first asked " +
		"for its minimum size under the room its container offers, then told the size " +
		"it actually got. Text is wrapped to the width and, when it is taller than " +
		"the viewport, a scrollbar is reserved and the text is wrapped again."
	return strings.Repeat(para+"\n\n", 6)
}
