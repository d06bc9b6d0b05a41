package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"GazetteDigest/internal/domain"
	"GazetteDigest/internal/ports"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	// DefaultMaxMessageLength is the Bot API cap on message text.
	DefaultMaxMessageLength = 4096
	blockSeparator          = "\n\n"
)

// Notifier sends digests to a Telegram chat via bot API.
type Notifier struct {
	botToken  string
	chatID    string
	apiBase   string
	maxLength int
	client    *http.Client
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier registers bot token and chat identifier.
func NewNotifier(botToken, chatID string, maxLength int) *Notifier {
	if maxLength <= 0 {
		maxLength = DefaultMaxMessageLength
	}
	return &Notifier{
		botToken:  botToken,
		chatID:    chatID,
		apiBase:   defaultAPIBase,
		maxLength: maxLength,
		client:    &http.Client{Timeout: 5 * time.Second},
	}
}

// PublishDigest posts the digest as one or more Markdown messages. The
// whole digest is split before the first request, so an oversized block
// fails without sending anything.
func (n *Notifier) PublishDigest(ctx context.Context, digest string) error {
	if n.botToken == "" || n.chatID == "" || n.client == nil {
		return fmt.Errorf("telegram notifier misconfigured")
	}

	messages, err := SplitMessages(digest, n.maxLength)
	if err != nil {
		return err
	}

	for i, message := range messages {
		if err := n.send(ctx, message); err != nil {
			return fmt.Errorf("message %d/%d: %w", i+1, len(messages), err)
		}
	}
	return nil
}

func (n *Notifier) send(ctx context.Context, text string) error {
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)
	form := url.Values{}
	form.Set("chat_id", n.chatID)
	form.Set("text", text)
	form.Set("parse_mode", "Markdown")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram error: %s", resp.Status)
	}

	return nil
}

// SplitMessages packs blank-line separated blocks into messages of at most
// maxLength characters. A block that alone exceeds the cap is an error.
func SplitMessages(digest string, maxLength int) ([]string, error) {
	if utf8.RuneCountInString(digest) <= maxLength {
		return []string{digest}, nil
	}

	var (
		messages []string
		current  string
	)
	for _, block := range strings.Split(digest, blockSeparator) {
		size := utf8.RuneCountInString(block)
		if size > maxLength {
			return nil, fmt.Errorf("%w: block of %d characters, limit %d", domain.ErrDigestTooLong, size, maxLength)
		}
		if current == "" {
			current = block
			continue
		}
		candidate := current + blockSeparator + block
		if utf8.RuneCountInString(candidate) > maxLength {
			messages = append(messages, current)
			current = block
			continue
		}
		current = candidate
	}
	if current != "" {
		messages = append(messages, current)
	}
	return messages, nil
}
