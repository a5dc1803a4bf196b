package tui

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette helpers.
//
// The field must stay readable on light and dark backgrounds, so colors are
// adaptive and "faint" is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted    lipgloss.TerminalColor = ac("240", "243")
	colorInputBg  lipgloss.TerminalColor = ac("254", "234")
	colorSurfaceF lipgloss.TerminalColor = ac("235", "252")

	colorAccent   lipgloss.TerminalColor = ac("27", "62")
	colorAccentFg lipgloss.TerminalColor = ac("255", "235")

	colorInvalidFg lipgloss.TerminalColor = ac("160", "203")
	colorOkFg      lipgloss.TerminalColor = ac("28", "78")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleSegment() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSurfaceF).Background(colorInputBg)
}

func styleSegmentFocused() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Bold(true)
}

func styleSegmentInvalid() lipgloss.Style {
	return styleSegment().Foreground(colorInvalidFg)
}

func styleDivider() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted).Background(colorInputBg))
}

func styleStatusOK() lipgloss.Style      { return lipgloss.NewStyle().Foreground(colorOkFg) }
func styleStatusInvalid() lipgloss.Style { return lipgloss.NewStyle().Foreground(colorInvalidFg) }

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive field. Only NO_COLOR is honored; CLICOLOR handling in
// termenv.EnvColorProfile can disable colors in a TUI by accident.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(upgradeProfile(termenv.ColorProfile(), os.Getenv("TERM"), os.Getenv("COLORTERM")))
}

// upgradeProfile trusts TERM/COLORTERM when they claim more than the
// detector reported; some terminals under-report.
func upgradeProfile(profile termenv.Profile, term, colorterm string) termenv.Profile {
	term = strings.ToLower(strings.TrimSpace(term))
	colorterm = strings.ToLower(strings.TrimSpace(colorterm))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			return termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			return termenv.ANSI256
		}
	}
	return profile
}

// applyThemePreference configures background detection.
//
// Priority:
// 1) DATEFIELD_TUI_THEME=light|dark|auto
// 2) COLORFGBG ("fg;bg")
// 3) the macOS appearance setting
func applyThemePreference() {
	if dark, ok := darkFromEnv(os.Getenv("DATEFIELD_TUI_THEME"), os.Getenv("COLORFGBG")); ok {
		lipgloss.SetHasDarkBackground(dark)
		return
	}
	if runtime.GOOS == "darwin" {
		if dark, ok := macOSHasDarkAppearance(); ok {
			lipgloss.SetHasDarkBackground(dark)
		}
	}
}

func darkFromEnv(theme, colorfgbg string) (dark, ok bool) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		return false, true
	case "dark":
		return true, true
	}
	if v := strings.TrimSpace(colorfgbg); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			return bg < 7, true
		}
	}
	return false, false
}

func macOSHasDarkAppearance() (dark bool, ok bool) {
	// Prints "Dark" in dark mode; exits 1 in light mode (key missing).
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}
