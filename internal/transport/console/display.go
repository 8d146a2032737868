package console

import (
	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Display maps participants to the glyphs and names shown at the console.
type Display struct {
	glyphs map[entity.Participant]string
	names  map[entity.Participant]string
}

func NewDisplay(conf config.Display) Display {
	return Display{
		glyphs: map[entity.Participant]string{
			entity.Empty:  conf.Glyphs.Empty,
			entity.Red:    conf.Glyphs.Red,
			entity.Yellow: conf.Glyphs.Yellow,
			entity.Bot:    conf.Glyphs.Bot,
		},
		names: map[entity.Participant]string{
			entity.Red:    conf.Names.Red,
			entity.Yellow: conf.Names.Yellow,
			entity.Bot:    conf.Names.Bot,
		},
	}
}

func DefaultDisplay() Display {
	return NewDisplay(config.Display{
		Glyphs: config.Glyphs{Empty: ".", Red: "R", Yellow: "Y", Bot: "A"},
		Names:  config.Names{Red: "Red", Yellow: "Yellow", Bot: "AI"},
	})
}

func (that Display) Glyph(p entity.Participant) string {
	if glyph, ok := that.glyphs[p]; ok {
		return glyph
	}
	return "?"
}

func (that Display) Name(p entity.Participant) string {
	if name, ok := that.names[p]; ok {
		return name
	}
	return p.String()
}
