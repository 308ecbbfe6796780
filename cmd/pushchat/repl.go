package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/pushchat-client/internal/core"
)

// runREPL reads commands line by line and renders state snapshots. Plain
// lines are sent as messages to the current room.
func runREPL(ctx context.Context, syncer *core.Synchronizer, in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "Commands: /name <username>, /rooms, /create <name>, /join <id>, /remove <id>, /users, /history, /status, /writing on|off, /quit")
	fmt.Fprintln(out, "Anything else is sent to the current room.")

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if strings.TrimSpace(line) == "/quit" {
				return
			}
			handleLine(syncer, out, line)
		}
	}
}

func handleLine(syncer *core.Synchronizer, out io.Writer, line string) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	var err error
	switch cmd {
	case "":
		return
	case "/name":
		err = syncer.SetUsername(arg)
	case "/rooms":
		renderRooms(out, syncer.Snapshot())
	case "/create":
		err = syncer.CreateRoom(arg)
	case "/join":
		err = syncer.JoinRoom(arg)
	case "/remove":
		err = syncer.RemoveRoom(arg)
	case "/users":
		renderUsers(out, syncer.Snapshot())
	case "/history":
		renderHistory(out, syncer.Snapshot())
	case "/status":
		renderStatus(out, syncer.Snapshot())
	case "/writing":
		err = syncer.SetWriting(arg == "on")
	default:
		err = syncer.SendMessage(line)
	}

	if err != nil {
		fmt.Fprintf(out, "! %v\n", err)
	}
	renderErrors(out, syncer.Snapshot())
}

func renderRooms(out io.Writer, snap core.Snapshot) {
	if len(snap.Rooms) == 0 {
		fmt.Fprintln(out, "No rooms added")
		return
	}
	for _, r := range snap.Rooms {
		marker := " "
		if r.ID == snap.CurrentRoom {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s  %s\n", marker, r.ID, r.Name)
	}
}

func renderUsers(out io.Writer, snap core.Snapshot) {
	for _, u := range snap.Users {
		name := u.Username
		if name == "" {
			name = u.ID
		}
		room := u.CurrentRoom
		if room == "" {
			room = "-"
		}
		fmt.Fprintf(out, "%s (room %s)\n", name, room)
	}
}

func renderHistory(out io.Writer, snap core.Snapshot) {
	if snap.CurrentRoom == "" {
		fmt.Fprintln(out, "Enter a room to start chatting!")
		return
	}
	// Snapshot order is newest first; print oldest first for reading.
	for i := len(snap.Messages) - 1; i >= 0; i-- {
		m := snap.Messages[i]
		fmt.Fprintf(out, "[%s] %s: %s\n", m.CreatedAt.Format("15:04:05"), m.AuthorUsername, m.Text)
	}
	if snap.WritingLabel != "" {
		fmt.Fprintln(out, snap.WritingLabel)
	}
}

func renderStatus(out io.Writer, snap core.Snapshot) {
	fmt.Fprintf(out, "state=%s id=%s username=%s room=%s rooms=%d users=%d messages=%d\n",
		snap.State, snap.Self.ConnID, snap.Self.Username, snap.CurrentRoom,
		len(snap.Rooms), len(snap.Users), len(snap.Messages))
}

func renderErrors(out io.Writer, snap core.Snapshot) {
	if snap.Errors.RoomCreationConflict {
		fmt.Fprintln(out, "Room already exists")
	}
	if snap.Errors.EmptyMessage {
		fmt.Fprintln(out, "You can't send an empty message!")
	}
}
