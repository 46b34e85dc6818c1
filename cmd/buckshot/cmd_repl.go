package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"buckshot/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const replHelp = `commands:
  live N | blank N        set remaining shells of a kind
  spend live|blank        record a fired shell (round only)
  start | end | reset     round control
  mark P live|blank|unknown
  clear                   forget revealed chambers
  add | remove ID         seat or remove an opponent
  hp ID N | skill ID N    update a player
  show | help | quit`

var errQuit = errors.New("quit")

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Track a table interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRepl(cmd.OutOrStdout())
			return r.run(cmd.InOrStdin())
		},
	}
}

// repl drives one app.Session from line commands.
type repl struct {
	svc  *app.Service
	sess *app.Session
	out  io.Writer
}

func newRepl(out io.Writer) *repl {
	svc := app.NewService(limits)
	return &repl{svc: svc, sess: svc.NewSession(), out: out}
}

func (r *repl) run(in io.Reader) error {
	fmt.Fprintln(r.out, "buckshot: type help for commands")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		err := r.exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}
}

// exec runs a single command line against the session.
func (r *repl) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var (
		events []app.Event
		err    error
	)
	switch cmd {
	case "quit", "exit":
		return errQuit
	case "help":
		fmt.Fprintln(r.out, replHelp)
		return nil
	case "show":
		renderSession(r.out, r.sess, r.svc.Analyze(r.sess))
		return nil
	case "live", "blank":
		var n int
		if n, err = intArg(args, 0); err != nil {
			return err
		}
		kind, _ := parseShellKind(cmd)
		events, err = r.svc.SetShellCount(r.sess, kind, n)
	case "spend":
		if len(args) != 1 {
			return fmt.Errorf("usage: spend live|blank")
		}
		kind, kerr := parseShellKind(args[0])
		if kerr != nil {
			return kerr
		}
		events, err = r.svc.SpendShell(r.sess, kind)
	case "start":
		events, err = r.svc.StartRound(r.sess)
	case "end":
		events, err = r.svc.EndRound(r.sess)
	case "reset":
		events = r.svc.Reset(r.sess)
	case "mark":
		if len(args) != 2 {
			return fmt.Errorf("usage: mark P live|blank|unknown")
		}
		pos, perr := intArg(args, 0)
		if perr != nil {
			return perr
		}
		state, serr := parseShellState(args[1])
		if serr != nil {
			return serr
		}
		events, err = r.svc.MarkChamber(r.sess, pos, state)
	case "clear":
		events = r.svc.ClearMarks(r.sess)
	case "add":
		player, evs, aerr := r.svc.AddPlayer(r.sess)
		if aerr != nil {
			return aerr
		}
		events = evs
		fmt.Fprintf(r.out, "seated %s as %d\n", player.Name, player.ID)
	case "remove":
		id, ierr := intArg(args, 0)
		if ierr != nil {
			return ierr
		}
		events, err = r.svc.RemovePlayer(r.sess, id)
	case "hp", "skill":
		if len(args) != 2 {
			return fmt.Errorf("usage: %s ID N", cmd)
		}
		id, ierr := intArg(args, 0)
		if ierr != nil {
			return ierr
		}
		n, nerr := intArg(args, 1)
		if nerr != nil {
			return nerr
		}
		u := app.PlayerUpdate{}
		if cmd == "hp" {
			u.HP = &n
		} else {
			u.Skill = &n
		}
		events, err = r.svc.UpdatePlayer(r.sess, id, u)
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	if err != nil {
		return err
	}

	for _, ev := range events {
		logger.Debug("session event", zap.String("kind", string(ev.Kind)))
	}
	analysis := r.svc.Analyze(r.sess)
	renderChambers(r.out, analysis.Chambers)
	renderRecommendation(r.out, analysis.Recommendation)
	return nil
}

func intArg(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing argument %d", i+1)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("argument %d: %q is not a number", i+1, args[i])
	}
	return n, nil
}
