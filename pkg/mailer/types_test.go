package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleTags(t *testing.T) {
	t.Parallel()

	tags := SimpleTags("admin", "redemption")
	require.Len(t, tags, 2)
	require.Equal(t, struct{}{}, tags["admin"])
	require.Empty(t, SimpleTags())
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	require.Equal(t, "PACAM Forms <forms@pacam.com>", Recipient("PACAM Forms", "forms@pacam.com"))
	require.Equal(t, "forms@pacam.com", Recipient("", "forms@pacam.com"))
}

func TestEmail_Size(t *testing.T) {
	t.Parallel()

	e := &Email{Attachments: []Attachment{{Content: make([]byte, 10)}, {Content: make([]byte, 5)}}}
	require.Equal(t, 15, e.Size())
	require.Zero(t, (&Email{}).Size())
}
