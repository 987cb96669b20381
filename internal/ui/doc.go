// Package ui provides the Bubble Tea dashboard for missionctl.
//
// # Architecture Overview
//
// The UI follows the Elm architecture. Model owns every pane's state and
// Update is the only place it changes. Long-running work (launch resolution,
// news loads, chat replies) runs inside tea.Cmd functions that return result
// messages, so network failures arrive as ordinary values and never block
// rendering.
//
// # Timers
//
//   - frameMsg advances the starfield at the configured frame rate.
//   - clockMsg re-renders the UTC and local clocks once per wall-clock second.
//   - countdownTickMsg carries the countdown generation that scheduled it.
//     Ticks from an older generation are dropped, which is how an expired or
//     re-acquired countdown cancels its predecessor.
//
// # Panes
//
//   - header.go: station bar, command bar and the overall layout
//   - sky.go: starfield canvas
//   - countdown.go: T-minus panel
//   - newsfeed.go: headline cards or the offline notice
//   - chatpane.go: comms transcript and input
//   - sidebar.go: navigation column toggled with "s"
//   - help.go: key binding overlay
//
// News loads carry a sequence number and only the most recently issued load
// may replace the panel.
package ui
