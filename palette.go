package nightsky

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Role names a palette entry.
type Role string

// Palette roles used by the drawing passes.
const (
	RoleBgTop         Role = "bg_top"
	RoleBgBottom      Role = "bg_bottom"
	RoleStar1         Role = "star1"
	RoleStar2         Role = "star2"
	RoleStar3         Role = "star3"
	RoleMoonLight     Role = "moon_light"
	RoleMoonDark      Role = "moon_dark"
	RoleCrater        Role = "crater"
	RoleAndromedaCore Role = "andromeda_core"
	RoleAndromedaArm  Role = "andromeda_arm"
	RoleGlowCyan      Role = "glow_cyan"
	RoleGlowMagenta   Role = "glow_magenta"
	RoleSuit          Role = "suit"
	RoleHelmet        Role = "helmet"
	RoleVisor         Role = "visor"
	RoleGear          Role = "gear"
)

// retroPalette is the purple/cyan/pink scheme of the default image.
var retroPalette = map[Role]string{
	RoleBgTop:         "#0a081a",
	RoleBgBottom:      "#04020a",
	RoleStar1:         "#f5f5f5",
	RoleStar2:         "#b4dcff",
	RoleStar3:         "#ffb4f0",
	RoleMoonLight:     "#f0f0ff",
	RoleMoonDark:      "#c8c8e6",
	RoleCrater:        "#b9b9d2",
	RoleAndromedaCore: "#ffa0c8",
	RoleAndromedaArm:  "#a0c8ff",
	RoleGlowCyan:      "#00ffdc",
	RoleGlowMagenta:   "#ff3cc8",
	RoleSuit:          "#14141e",
	RoleHelmet:        "#1e1e2d",
	RoleVisor:         "#0ab4c8",
	RoleGear:          "#191928",
}

// Palette is a read-only mapping from role to color.
type Palette struct {
	colors map[Role]Color
}

// DefaultPalette returns the retro night sky palette.
func DefaultPalette() *Palette {
	p, err := ParsePalette(retroPalette)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePalette builds a palette from "#rrggbb" hex strings.
func ParsePalette(hex map[Role]string) (*Palette, error) {
	p := &Palette{colors: make(map[Role]Color, len(hex))}
	for role, s := range hex {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("nightsky: palette role %q: %w", role, err)
		}
		r, g, b := c.RGB255()
		p.colors[role] = RGB(r, g, b)
	}
	return p, nil
}

// Color returns the color for role. It panics if the role is missing,
// which is a programming error in the pass that asked for it.
func (p *Palette) Color(role Role) Color {
	c, ok := p.colors[role]
	if !ok {
		panic(fmt.Sprintf("nightsky: palette has no role %q", role))
	}
	return c
}
