package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/missionctl/internal/chat"
	"github.com/five82/missionctl/internal/fetch"
	"github.com/five82/missionctl/internal/launch"
	"github.com/five82/missionctl/internal/news"
)

// Message types

type frameMsg time.Time

type clockMsg time.Time

type countdownTickMsg struct {
	gen uint64
}

type launchResolvedMsg struct {
	gen    uint64
	target launch.Target
}

type newsLoadedMsg struct {
	seq    uint64
	result fetch.Result[[]news.Article]
}

type chatReplyMsg struct {
	id     string
	answer chat.Answer
}

// Commands

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// clockCmd fires on the next wall-clock second.
func clockCmd() tea.Cmd {
	return tea.Every(clockInterval, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func countdownCmd(gen uint64) tea.Cmd {
	return tea.Tick(countdownInterval, func(time.Time) tea.Msg {
		return countdownTickMsg{gen: gen}
	})
}

// countdownNow renders the first value immediately after arming.
func countdownNow(gen uint64) tea.Cmd {
	return func() tea.Msg {
		return countdownTickMsg{gen: gen}
	}
}

func resolveLaunchCmd(ctx context.Context, r launch.Resolver, gen uint64) tea.Cmd {
	return func() tea.Msg {
		return launchResolvedMsg{gen: gen, target: r.Resolve(ctx)}
	}
}

func loadNewsCmd(ctx context.Context, src NewsSource, limit int, seq uint64) tea.Cmd {
	return func() tea.Msg {
		if src == nil {
			return newsLoadedMsg{seq: seq, result: fetch.Empty[[]news.Article]("no news source configured")}
		}
		return newsLoadedMsg{seq: seq, result: src.Latest(ctx, limit)}
	}
}

func askCmd(ctx context.Context, w *chat.Widget, p chat.Pending) tea.Cmd {
	return func() tea.Msg {
		return chatReplyMsg{id: p.ID, answer: w.Ask(ctx, p.Text)}
	}
}
