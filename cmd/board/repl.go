package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/honeycarbs/job-tracker/internal/app"
	"github.com/honeycarbs/job-tracker/internal/board"
	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/notify"
)

const helpText = `Commands:
  list [status]          show the board, optionally one status
  drag <id> [target]     drop a card on a status column or another card id
  move <id> <status>     set a job's status
  delete <id>            delete a job (asks for confirmation)
  search <query>         search job boards
  save <n>               save result n of the last search
  referrals [company]    list referral contacts
  help                   show this help
  quit                   exit`

type repl struct {
	console *app.Console
	in      *bufio.Scanner
	out     io.Writer

	results []domain.SearchJob
}

func newREPL(console *app.Console, in io.Reader, out io.Writer) *repl {
	return &repl{console: console, in: bufio.NewScanner(in), out: out}
}

// toastPrinter writes notifications as they are emitted
func toastPrinter(out io.Writer) notify.Notifier {
	return notify.NotifierFunc(func(n notify.Notification) {
		fmt.Fprintf(out, "[%s] %s\n", n.Level, n.Message)
	})
}

// Run reads commands until quit or EOF
func (r *repl) Run(ctx context.Context) {
	for {
		fmt.Fprint(r.out, "> ")
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return
		}
		if !r.exec(ctx, r.in.Text()) {
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// exec runs one command line and reports whether to keep going
func (r *repl) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		fmt.Fprintln(r.out, helpText)
	case "list":
		r.list(ctx, args)
	case "drag":
		r.drag(ctx, args)
	case "move":
		r.move(ctx, args)
	case "delete":
		r.delete(ctx, args)
	case "search":
		r.search(ctx, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0])))
	case "save":
		r.save(ctx, args)
	case "referrals":
		r.referrals(ctx, strings.Join(args, " "))
	default:
		fmt.Fprintf(r.out, "unknown command %q, try help\n", cmd)
	}
	return true
}

func (r *repl) list(ctx context.Context, args []string) {
	var filter domain.JobFilter
	if len(args) > 0 {
		st, ok := parseStatus(args[0])
		if !ok {
			r.usageStatus()
			return
		}
		filter.Status = st
	}
	if err := r.console.Board.SetFilter(ctx, filter); err != nil {
		return
	}

	for _, col := range r.console.Board.Store().Columns() {
		if filter.Status != "" && col.Status != filter.Status {
			continue
		}
		fmt.Fprintf(r.out, "== %s (%d) ==\n", col.Status, len(col.Jobs))
		for _, j := range col.Jobs {
			fmt.Fprintf(r.out, "  #%d %s @ %s\n", j.ID, j.Title, j.Company)
		}
	}
}

func (r *repl) drag(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "usage: drag <id> [target]")
		return
	}
	ev := board.DragEnd{Active: args[0]}
	if len(args) > 1 {
		ev.Over = args[1]
		if st, ok := parseStatus(args[1]); ok {
			ev.Over = string(st)
		}
	}

	out, err := r.console.Board.HandleDragEnd(ctx, ev)
	if err == nil && !out.Moved {
		fmt.Fprintln(r.out, "no change")
	}
}

func (r *repl) move(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(r.out, "usage: move <id> <status>")
		return
	}
	id, ok := r.parseID(args[0])
	if !ok {
		return
	}
	st, ok := parseStatus(args[1])
	if !ok {
		r.usageStatus()
		return
	}
	_, _ = r.console.Board.Move(ctx, id, st)
}

func (r *repl) delete(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "usage: delete <id>")
		return
	}
	id, ok := r.parseID(args[0])
	if !ok {
		return
	}

	fmt.Fprintf(r.out, "Delete job %d? [y/N] ", id)
	if !r.in.Scan() || !strings.EqualFold(strings.TrimSpace(r.in.Text()), "y") {
		fmt.Fprintln(r.out, "cancelled")
		return
	}
	_, _ = r.console.Board.Delete(ctx, id)
}

func (r *repl) search(ctx context.Context, query string) {
	res, err := r.console.Search.Search(ctx, domain.SearchParams{Query: query})
	if err != nil {
		return
	}

	r.results = res.Jobs
	for i, j := range res.Jobs {
		loc := ""
		if j.Location != "" {
			loc = " (" + j.Location + ")"
		}
		fmt.Fprintf(r.out, "%2d. %s @ %s%s [%s]\n", i+1, j.Title, j.Company, loc, j.Source)
	}
}

func (r *repl) save(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "usage: save <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(r.results) {
		fmt.Fprintf(r.out, "pick a result between 1 and %d\n", len(r.results))
		return
	}
	_, _, _ = r.console.Search.Save(ctx, r.results[n-1])
}

func (r *repl) referrals(ctx context.Context, company string) {
	refs, err := r.console.Referrals.List(ctx, domain.ReferralFilter{Company: company})
	if err != nil {
		return
	}
	if len(refs) == 0 {
		fmt.Fprintln(r.out, "no referrals")
		return
	}
	for _, ref := range refs {
		fmt.Fprintf(r.out, "  #%d %s @ %s [%s]\n", ref.ID, ref.ContactName, ref.Company, ref.Status)
	}
}

func (r *repl) parseID(s string) (domain.JobID, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(r.out, "invalid job id %q\n", s)
		return 0, false
	}
	return id, true
}

// parseStatus accepts status names in any case
func parseStatus(s string) (domain.JobStatus, bool) {
	for _, st := range domain.Statuses() {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return "", false
}

func (r *repl) usageStatus() {
	names := make([]string, 0, len(domain.Statuses()))
	for _, s := range domain.Statuses() {
		names = append(names, string(s))
	}
	fmt.Fprintf(r.out, "status must be one of %s\n", strings.Join(names, ", "))
}
