package pages

import (
	"context"

	"go.uber.org/zap"

	"github.com/flixhummel/mcduterm/internal/config"
	"github.com/flixhummel/mcduterm/internal/datapoint"
	"github.com/flixhummel/mcduterm/internal/display"
	"github.com/flixhummel/mcduterm/internal/logging"
)

// Controller owns the current-page state and renders pages to the display.
type Controller struct {
	reg     *config.Registry
	store   datapoint.Store
	pub     display.Publisher
	current string
}

// NewController creates a controller positioned on the template's root page.
func NewController(reg *config.Registry, store datapoint.Store, pub display.Publisher) *Controller {
	return &Controller{
		reg:     reg,
		store:   store,
		pub:     pub,
		current: reg.RootPage,
	}
}

// CurrentPageID returns the id of the active page.
func (c *Controller) CurrentPageID() string {
	return c.current
}

// CurrentPage returns the active page's configuration.
func (c *Controller) CurrentPage() (*config.Page, bool) {
	return c.reg.Lookup(c.current)
}

// Line returns the active page's line configuration for a 1-based LSK row.
func (c *Controller) Line(row int) (config.Line, bool) {
	page, ok := c.CurrentPage()
	if !ok || row < 1 || row > len(page.Lines) {
		return config.Line{}, false
	}
	return page.Lines[row-1], true
}

// Parent returns the active page's parent id, if it has one.
func (c *Controller) Parent() (string, bool) {
	page, ok := c.CurrentPage()
	if !ok || page.Parent == "" {
		return "", false
	}
	return page.Parent, true
}

// Root returns the template's root page id.
func (c *Controller) Root() string {
	return c.reg.RootPage
}

// SwitchToPage makes the given page active and renders it. An unknown id is
// logged and the switch abandoned; a misconfigured navigation target must
// never fail the terminal.
func (c *Controller) SwitchToPage(ctx context.Context, id string) {
	if _, ok := c.reg.Lookup(id); !ok {
		logging.Warn("Navigation to unknown page",
			zap.String("page", id),
		)
		return
	}
	c.current = id
	logging.Debug("Page switched", zap.String("page", id))
	c.RenderCurrentPage(ctx)
}

// RenderCurrentPage composes rows 0-12 from configuration and live values
// and publishes them. Row 13 belongs to the scratchpad.
func (c *Controller) RenderCurrentPage(ctx context.Context) {
	page, ok := c.CurrentPage()
	if !ok {
		logging.Warn("Active page missing from template",
			zap.String("page", c.current),
		)
		return
	}

	c.pub.PublishLine(0, display.Center(page.Title), display.ColorWhite)

	for i, line := range page.Lines {
		labelRow := 1 + 2*i
		valueRow := 2 + 2*i

		labels := display.Compose(line.Left.Display.Label, line.Right.Display.Label)
		values := display.Compose(
			c.fieldValue(ctx, line.Left.Display),
			c.fieldValue(ctx, line.Right.Display),
		)

		c.pub.PublishLine(labelRow, labels, display.ColorGray)
		// Row 12 doubles as the overlay row; repainting it here is what
		// reverts an expired transient overlay.
		c.pub.PublishLine(valueRow, values, display.ColorGreen)
	}
}

// fieldValue resolves the display string of one half-line field. Remote read
// failures render as the bad-quality form, never as an error.
func (c *Controller) fieldValue(ctx context.Context, field config.DisplayField) string {
	switch field.Type {
	case config.DisplayText:
		return ""
	case config.DisplayDatapoint:
		if field.Source == "" {
			return ""
		}
		v, err := c.store.Get(ctx, field.Source)
		if err != nil {
			logging.Debug("Display value unavailable",
				zap.String("addr", field.Source),
				zap.Error(err),
			)
			return "----"
		}
		meta, err := c.store.Metadata(ctx, field.Source)
		if err != nil {
			meta = datapoint.Metadata{Type: v.Type}
		}
		return v.DisplayForm(meta)
	default:
		return ""
	}
}
