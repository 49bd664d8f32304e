package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/metrics"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/service"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/store"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/terminal"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/testutil"
)

var now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func runShell(t *testing.T, input string) (string, *testutil.FlakySlot) {
	t.Helper()

	ctx := context.Background()
	slot := testutil.NewFlakySlot()
	adapter := store.NewAdapter(slot, "", testutil.MakeNoopLogger())
	registry := service.NewRegistry(ctx, adapter, testutil.MakeNoopLogger(), metrics.New(),
		service.WithClock(func() time.Time { return now }))

	out := &bytes.Buffer{}
	term := terminal.NewPrompter(bufio.NewReader(strings.NewReader(input)), out)
	NewShell(registry, term, out, testutil.MakeNoopLogger()).Run(ctx)

	return out.String(), slot
}

func TestShell_Check(t *testing.T) {
	out, _ := runShell(t, "check (877) 999-9999\ncheck 555-000-0000\ncheck\n")

	assert.Contains(t, out, "Registry: 10 numbers, 0 reported today.")
	assert.Contains(t, out, "recognized as a scam number (IRS)")
	assert.Contains(t, out, "This number is not in our database.")
	assert.Contains(t, out, "Please enter a number to check.")
}

func TestShell_Report(t *testing.T) {
	input := strings.Join([]string{
		"report 555.123.4567",
		"Charity",
		"Fake hurricane relief",
		"report 555-123-4567",
		"report 555-1234",
		"report",
		"stats",
		"quit",
	}, "\n") + "\n"

	out, slot := runShell(t, input)

	assert.Contains(t, out, "Enter scam category")
	assert.Contains(t, out, "Thank you for reporting 555-123-4567!")
	assert.Contains(t, out, "This number has already been reported as a scam.")
	assert.Contains(t, out, "Please enter a valid 10-digit phone number.")
	assert.Contains(t, out, "Please enter a number to report.")
	assert.Contains(t, out, "Registry: 11 numbers, 1 reported today.")
	assert.Contains(t, string(slot.Payload(model.DefaultSlotKey)), "Fake hurricane relief")
}

func TestShell_Remove(t *testing.T) {
	input := strings.Join([]string{
		"remove 800-111-0000",
		"n",
		"remove 800-111-0000",
		"yes",
		"remove 800-111-0000",
		"remove 555",
		"remove",
		"check 800-111-0000",
	}, "\n") + "\n"

	out, _ := runShell(t, input)

	assert.Contains(t, out, "Are you sure you want to remove 800-111-0000 from the registry? [y/N]")
	assert.Contains(t, out, "Removal cancelled.")
	assert.Contains(t, out, "Phone number 800-111-0000 has been removed from the database.")
	assert.Contains(t, out, "This number is not in the database.")
	assert.Contains(t, out, "Please enter a valid 10-digit phone number.")
	assert.Contains(t, out, "Please enter a number to delete.")
	assert.Contains(t, out, "This number is not in our database.")
}

func TestShell_PersistenceFailure(t *testing.T) {
	ctx := context.Background()
	slot := testutil.NewFlakySlot()
	adapter := store.NewAdapter(slot, "", testutil.MakeNoopLogger())
	registry := service.NewRegistry(ctx, adapter, testutil.MakeNoopLogger(), nil)
	slot.SetFailing(true)

	out := &bytes.Buffer{}
	term := terminal.NewPrompter(bufio.NewReader(strings.NewReader("remove 800-111-0000\ny\ncheck 800-111-0000\n")), out)
	NewShell(registry, term, out, testutil.MakeNoopLogger()).Run(ctx)

	assert.Contains(t, out.String(), "Could not save the registry; nothing was changed.")
	assert.Contains(t, out.String(), "recognized as a scam number (Toll-free)")
}

func TestShell_ListSearchFormat(t *testing.T) {
	out, _ := runShell(t, "list\nsearch LOTTERY\nsearch nothing-like-this\nformat 8001\nformat 80011100001\nhelp\nbogus\n")

	lines := strings.Split(out, "\n")
	header := -1
	for i, l := range lines {
		if strings.HasPrefix(strings.TrimPrefix(l, "> "), "NUMBER ") {
			header = i
			break
		}
	}
	require.GreaterOrEqual(t, header, 0)
	require.Less(t, header+1, len(lines))
	assert.True(t, strings.HasPrefix(lines[header+1], "800-111-0000"), "equal timestamps keep insertion order")

	assert.Contains(t, out, "833-123-0000  Lottery")
	assert.Contains(t, out, "876-234-5678  Lottery")
	assert.Contains(t, out, "No matching entries.")
	assert.Contains(t, out, "800-1\n")
	assert.Contains(t, out, "Too many digits")
	assert.Contains(t, out, "report <number>")
	assert.Contains(t, out, `Unknown command "bogus"`)
}

func TestShell_Exec_Quit(t *testing.T) {
	s := NewShell(nil, nil, &bytes.Buffer{}, testutil.MakeNoopLogger())
	assert.False(t, s.Exec(context.Background(), "quit"))
	assert.False(t, s.Exec(context.Background(), "EXIT"))
	assert.True(t, s.Exec(context.Background(), "   "))
}
