// ABOUTME: Closed enumeration of system color roles and their Win32 indices
// ABOUTME: Maps each role to exactly one COLOR_* constant and parses role names
package syscolor

import (
	"fmt"
	"strings"
)

// Index identifies a system UI element whose color the theme defines
type Index uint8

// Roles in Win32 COLOR_* value order
const (
	ScrollBar Index = iota
	Background
	ActiveCaption
	InactiveCaption
	Menu
	Window
	WindowFrame
	MenuText
	WindowText
	CaptionText
	ActiveBorder
	InactiveBorder
	AppWorkspace
	Highlight
	HighlightText
	ButtonFace
	ButtonShadow
	GrayText
	ButtonText
	InactiveCaptionText
	ButtonHighlight
	ThreeDDarkShadow
	ThreeDLight
	InfoText
	InfoBackground
	HotLight
	GradientActiveCaption
	GradientInactiveCaption
	MenuHighlight
	MenuBar

	indexCount
)

type indexInfo struct {
	name        string
	constant    string
	value       int32
	aliases     []string
	description string
}

var indexTable = [...]indexInfo{
	ScrollBar:               {"ScrollBar", "COLOR_SCROLLBAR", 0, nil, "Scroll bar gray area"},
	Background:              {"Background", "COLOR_BACKGROUND", 1, []string{"COLOR_DESKTOP"}, "Desktop background"},
	ActiveCaption:           {"ActiveCaption", "COLOR_ACTIVECAPTION", 2, nil, "Active window title bar, left side of the gradient"},
	InactiveCaption:         {"InactiveCaption", "COLOR_INACTIVECAPTION", 3, nil, "Inactive window title bar, left side of the gradient"},
	Menu:                    {"Menu", "COLOR_MENU", 4, nil, "Menu background"},
	Window:                  {"Window", "COLOR_WINDOW", 5, nil, "Window background"},
	WindowFrame:             {"WindowFrame", "COLOR_WINDOWFRAME", 6, nil, "Window frame"},
	MenuText:                {"MenuText", "COLOR_MENUTEXT", 7, nil, "Text in menus"},
	WindowText:              {"WindowText", "COLOR_WINDOWTEXT", 8, nil, "Text in windows"},
	CaptionText:             {"CaptionText", "COLOR_CAPTIONTEXT", 9, nil, "Text in title bars, size boxes and scroll bar arrow boxes"},
	ActiveBorder:            {"ActiveBorder", "COLOR_ACTIVEBORDER", 10, nil, "Active window border"},
	InactiveBorder:          {"InactiveBorder", "COLOR_INACTIVEBORDER", 11, nil, "Inactive window border"},
	AppWorkspace:            {"AppWorkspace", "COLOR_APPWORKSPACE", 12, nil, "Background of multiple-document interface applications"},
	Highlight:               {"Highlight", "COLOR_HIGHLIGHT", 13, nil, "Items selected in a control"},
	HighlightText:           {"HighlightText", "COLOR_HIGHLIGHTTEXT", 14, nil, "Text of items selected in a control"},
	ButtonFace:              {"ButtonFace", "COLOR_BTNFACE", 15, []string{"COLOR_3DFACE"}, "Face of 3D elements and dialog box backgrounds"},
	ButtonShadow:            {"ButtonShadow", "COLOR_BTNSHADOW", 16, []string{"COLOR_3DSHADOW"}, "Shadow of 3D elements, edges facing away from the light"},
	GrayText:                {"GrayText", "COLOR_GRAYTEXT", 17, nil, "Grayed (disabled) text"},
	ButtonText:              {"ButtonText", "COLOR_BTNTEXT", 18, nil, "Text on push buttons"},
	InactiveCaptionText:     {"InactiveCaptionText", "COLOR_INACTIVECAPTIONTEXT", 19, nil, "Text in an inactive title bar"},
	ButtonHighlight:         {"ButtonHighlight", "COLOR_BTNHIGHLIGHT", 20, []string{"COLOR_3DHIGHLIGHT", "COLOR_3DHILIGHT", "COLOR_BTNHILIGHT"}, "Highlight of 3D elements, edges facing the light"},
	ThreeDDarkShadow:        {"ThreeDDarkShadow", "COLOR_3DDKSHADOW", 21, nil, "Dark shadow of 3D elements"},
	ThreeDLight:             {"ThreeDLight", "COLOR_3DLIGHT", 22, nil, "Light color of 3D elements, edges facing the light"},
	InfoText:                {"InfoText", "COLOR_INFOTEXT", 23, nil, "Tooltip text"},
	InfoBackground:          {"InfoBackground", "COLOR_INFOBK", 24, nil, "Tooltip background"},
	HotLight:                {"HotLight", "COLOR_HOTLIGHT", 26, nil, "Hyperlinks and hot-tracked items"},
	GradientActiveCaption:   {"GradientActiveCaption", "COLOR_GRADIENTACTIVECAPTION", 27, nil, "Active window title bar, right side of the gradient"},
	GradientInactiveCaption: {"GradientInactiveCaption", "COLOR_GRADIENTINACTIVECAPTION", 28, nil, "Inactive window title bar, right side of the gradient"},
	MenuHighlight:           {"MenuHighlight", "COLOR_MENUHILIGHT", 29, nil, "Highlighted menu items when menus are flat"},
	MenuBar:                 {"MenuBar", "COLOR_MENUBAR", 30, nil, "Menu bar background when menus are flat"},
}

// Fails to compile if the table and the role constants disagree in length
var _ = [1]struct{}{}[len(indexTable)-int(indexCount)]

var indexByName = buildNameLookup()

func buildNameLookup() map[string]Index {
	lookup := make(map[string]Index)
	for i := range indexCount {
		info := indexTable[i]
		lookup[normalizeName(info.name)] = i
		lookup[normalizeName(info.constant)] = i
		lookup[normalizeName(strings.TrimPrefix(info.constant, "COLOR_"))] = i
		for _, alias := range info.aliases {
			lookup[normalizeName(alias)] = i
			lookup[normalizeName(strings.TrimPrefix(alias, "COLOR_"))] = i
		}
	}
	return lookup
}

// normalizeName folds case and drops separators so "active-caption",
// "active_caption" and "ActiveCaption" compare equal
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// All returns every role in Win32 value order
func All() []Index {
	all := make([]Index, 0, indexCount)
	for i := range indexCount {
		all = append(all, i)
	}
	return all
}

// Valid reports whether i is one of the defined roles
func (i Index) Valid() bool {
	return i < indexCount
}

// String returns the role name, e.g. "ActiveCaption"
func (i Index) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Index(%d)", uint8(i))
	}
	return indexTable[i].name
}

// Constant returns the Win32 constant name, e.g. "COLOR_ACTIVECAPTION"
func (i Index) Constant() string {
	if !i.Valid() {
		return ""
	}
	return indexTable[i].constant
}

// Value returns the integer passed to GetSysColor, or -1 for an invalid role
func (i Index) Value() int32 {
	if !i.Valid() {
		return -1
	}
	return indexTable[i].value
}

// Aliases returns other Win32 constant names defined with the same value
func (i Index) Aliases() []string {
	if !i.Valid() {
		return nil
	}
	return append([]string(nil), indexTable[i].aliases...)
}

// Description returns a short summary of the UI element the role colors
func (i Index) Description() string {
	if !i.Valid() {
		return ""
	}
	return indexTable[i].description
}

// Slug returns the kebab-case role name, e.g. "active-caption"
func (i Index) Slug() string {
	if !i.Valid() {
		return ""
	}
	name := indexTable[i].name
	var b strings.Builder
	for pos, r := range name {
		if r >= 'A' && r <= 'Z' {
			if pos > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MarshalText encodes the role as its slug
func (i Index) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, &UnknownIndexError{Name: i.String()}
	}
	return []byte(i.Slug()), nil
}

// UnmarshalText decodes any name accepted by ParseIndex
func (i *Index) UnmarshalText(text []byte) error {
	parsed, err := ParseIndex(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// UnknownIndexError reports a role name that matches no system color
type UnknownIndexError struct {
	Name string
}

func (e *UnknownIndexError) Error() string {
	return fmt.Sprintf("unknown system color %q", e.Name)
}

// ParseIndex resolves a role from its name, slug, or Win32 constant.
// Matching ignores case, hyphens and underscores; the COLOR_ prefix is optional.
func ParseIndex(name string) (Index, error) {
	if i, ok := indexByName[normalizeName(name)]; ok {
		return i, nil
	}
	return 0, &UnknownIndexError{Name: name}
}
