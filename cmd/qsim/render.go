package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theapemachine/qsim"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#20B9B4"))
	outcomeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4D03F"))
	verdictStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
)

func renderTitle(title string) string {
	return titleStyle.Render(title)
}

func renderOutcome(outcome int) string {
	return outcomeStyle.Render(fmt.Sprintf("%d", outcome))
}

func renderVerdict(verdict string) string {
	return verdictStyle.Render(verdict)
}

func formatAmplitude(amp complex128) string {
	return fmt.Sprintf("%.4f%+.4fi", real(amp), imag(amp))
}

// renderState lists every basis state with its amplitude, one per line,
// dimming the ones with no probability mass.
func renderState(state *qsim.QuantumState) string {
	var b strings.Builder
	n := state.NumQubits()
	for i, amp := range state.Amplitudes() {
		line := fmt.Sprintf("|%0*b⟩  %s  p=%.4f", n, i, formatAmplitude(amp), state.Probability(i))
		if state.Probability(i) < 1e-9 {
			line = mutedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderLabeled(label string, amps []complex128) string {
	parts := make([]string, len(amps))
	for i, amp := range amps {
		parts[i] = formatAmplitude(amp)
	}
	return fmt.Sprintf("%s: [%s]", labelStyle.Render(label), strings.Join(parts, " "))
}
