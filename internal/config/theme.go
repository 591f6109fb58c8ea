package config

// Theme holds the color palette used by the board renderer. All values are
// hex colors or ANSI color numbers accepted by lipgloss.
type Theme struct {
	ColumnBorder   string `yaml:"column_border"`
	SelectedBorder string `yaml:"selected_border"`
	CardBg         string `yaml:"card_bg"`
	SelectedBg     string `yaml:"selected_bg"`
	DraggedBg      string `yaml:"dragged_bg"`
	DropTarget     string `yaml:"drop_target"`
	Subtle         string `yaml:"subtle"`
	Accent         string `yaml:"accent"`
	ErrorFg        string `yaml:"error_fg"`
}

func (t *Theme) applyDefaults() {
	if t.ColumnBorder == "" {
		t.ColumnBorder = "240"
	}
	if t.SelectedBorder == "" {
		t.SelectedBorder = "63"
	}
	if t.CardBg == "" {
		t.CardBg = "236"
	}
	if t.SelectedBg == "" {
		t.SelectedBg = "238"
	}
	if t.DraggedBg == "" {
		t.DraggedBg = "237"
	}
	if t.DropTarget == "" {
		t.DropTarget = "108"
	}
	if t.Subtle == "" {
		t.Subtle = "243"
	}
	if t.Accent == "" {
		t.Accent = "212"
	}
	if t.ErrorFg == "" {
		t.ErrorFg = "203"
	}
}
