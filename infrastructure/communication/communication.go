package communication

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"

	"irbana.com/pontosync/offline"
	"irbana.com/pontosync/utils"
)

type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

func ConnectSlack() *Slack {
	token := os.Getenv("SLACK_BOT_TOKEN")
	infoCh := os.Getenv("SLACK_INFO_CHANNEL")
	errorCh := os.Getenv("SLACK_ERROR_CHANNEL")

	return NewSlack(token, SlackOption{InfoChannelID: infoCh, ErrorChannelID: errorCh})
}

func NewSlack(token string, options SlackOption) *Slack {
	client := slack.New(token)
	return &Slack{client: client, options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (this *Slack) Info(message string) error {
	return this.postMessage(this.options.InfoChannelID, message)
}

func (this *Slack) Error(message string) error {
	return this.postMessage(this.options.ErrorChannelID, message)
}

// NotifyOutcome reports a drain outcome: summaries go to the info
// channel, terminal rejections additionally to the error channel so
// someone looks at punches the backend refused.
func (s *Slack) NotifyOutcome(outcome *offline.Outcome) {
	s.Info(fmt.Sprintf("[%s] %s", outcome.Kind, outcome.Resumo()))

	messages := utils.Map(outcome.Terminal, func(failure offline.TerminalFailure) string {
		return fmt.Sprintf("[%s] ação %s rejeitada: %v", outcome.Kind, failure.Action.ID, failure.Err)
	})
	for _, message := range messages {
		s.Error(message)
	}
}
