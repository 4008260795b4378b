// Package output renders command results for people and for scripts.
//
// Three renderers share the Renderer interface:
//
//   - terminal: lipgloss styles from pkg/output/styles and pterm tables
//   - text: plain lines with no escape sequences, used when piped
//   - json: indented JSON for machine consumption
//
// NewRenderer picks one from a Format. FormatAuto inspects the writer with
// go-isatty and termenv the same way DetectFormat does. The embedded
// template syntax guide is rendered with glamour by RenderMarkdown.
package output
