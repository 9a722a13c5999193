package main

import (
	"fmt"

	"github.com/vellum-ui/vellum/pkg/layout"
)

// buildDemo constructs one of the built-in demo trees.
func buildDemo(name string) (*layout.Node, error) {
	switch name {
	case "", "dashboard":
		return dashboardDemo(), nil
	case "table":
		return tableDemo(), nil
	case "tabs":
		return tabsDemo(), nil
	case "overlay":
		return overlayDemo(), nil
	default:
		return nil, fmt.Errorf("unknown demo %q (want dashboard, table, tabs, or overlay)", name)
	}
}

// dashboardDemo exercises rows, columns, grow/shrink, and alignment.
func dashboardDemo() *layout.Node {
	sidebar := layout.NewColumn(layout.Style{Width: layout.Px(200), Padding: layout.EdgeAll(12)},
		layout.NewText("Navigation", layout.Style{FontSize: 18}),
		layout.NewButton("Home", layout.Style{}),
		layout.NewButton("Reports", layout.Style{}),
		layout.NewButton("Settings", layout.Style{}),
	)
	sidebar.Layout = &layout.Layout{Gap: 8, Shrink: 1}

	heading := layout.NewNode(layout.KindHeading, layout.Style{})
	heading.Text = "Quarterly Overview"
	heading.Payload = &layout.HeadingPayload{Level: 2}

	content := layout.NewColumn(layout.Style{Padding: layout.EdgeAll(16)},
		heading,
		layout.NewText("All regions reporting. Select a row for details.", layout.Style{}),
		layout.NewNode(layout.KindInput, layout.Style{}),
	)
	content.Layout = &layout.Layout{Grow: 1, Shrink: 1, Gap: 12}

	root := layout.NewRow(layout.Style{}, sidebar, content)
	root.Layout = &layout.Layout{Align: layout.AlignStretch, Shrink: 1}
	return root
}

// tableDemo exercises the grid sizing algorithm.
func tableDemo() *layout.Node {
	header := layout.NewNode(layout.KindTableRow, layout.Style{})
	for _, label := range []string{"Region", "Revenue", "Change"} {
		cell := layout.NewNode(layout.KindTableHeaderCell, layout.Style{})
		cell.Text = label
		header.AddChild(cell)
	}
	head := layout.NewNode(layout.KindTableHead, layout.Style{})
	head.AddChild(header)

	body := layout.NewNode(layout.KindTableBody, layout.Style{})
	for _, rowData := range [][]string{
		{"EMEA", "4.2M", "+12%"},
		{"APAC", "3.8M", "+31%"},
		{"AMER", "6.1M", "-2%"},
	} {
		row := layout.NewNode(layout.KindTableRow, layout.Style{})
		for _, text := range rowData {
			cell := layout.NewNode(layout.KindTableCell, layout.Style{})
			cell.Text = text
			row.AddChild(cell)
		}
		body.AddChild(row)
	}

	return layout.NewTable(layout.Style{},
		&layout.TablePayload{Borders: true, BorderWidth: 1},
		head, body,
	)
}

// tabsDemo exercises the tab group strategy.
func tabsDemo() *layout.Node {
	group := layout.NewNode(layout.KindTabGroup, layout.Style{})
	group.Payload = &layout.TabGroupPayload{
		Tabs:     []string{"Summary", "Details", "History"},
		Selected: 1,
	}
	group.AddChild(
		layout.NewColumn(layout.Style{}, layout.NewText("Summary panel", layout.Style{})),
		layout.NewColumn(layout.Style{}, layout.NewText("Details panel", layout.Style{})),
		layout.NewColumn(layout.Style{}, layout.NewText("History panel", layout.Style{})),
	)
	return group
}

// overlayDemo exercises absolute positioning and z-ordering.
func overlayDemo() *layout.Node {
	base := layout.NewText("Background content", layout.Style{})

	toast := layout.NewText("Saved", layout.Style{
		Position: layout.PositionAbsolute,
		X:        600, Y: 20,
		ZIndex: 5,
	})
	modal := layout.NewCenter(layout.Style{
		Position: layout.PositionAbsolute,
		X:        200, Y: 150,
		Width:  layout.Px(400),
		Height: layout.Px(250),
		ZIndex: 3,
	}, layout.NewButton("Confirm", layout.Style{}))
	scrim := layout.NewNode(layout.KindContainer, layout.Style{
		Position: layout.PositionAbsolute,
		Width:    layout.Percent(100),
		Height:   layout.Percent(100),
		ZIndex:   1,
	})

	root := layout.NewColumn(layout.Style{}, base)
	root.AddChild(toast, modal, scrim)
	return root
}
