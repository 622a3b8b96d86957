package specscot

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexandre-normand/specscot/agent"
	"github.com/alexandre-normand/specscot/config"
	"github.com/pkg/errors"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
)

// Specscot represents the mention-to-spec bridge bot (mostly, a name, a
// configuration and the PM agent it delegates to)
type Specscot struct {
	name    string
	config  *viper.Viper
	channel string

	// halted is read once at startup from configuration. When set, mentions get
	// a fixed advisory and the PM agent is never invoked
	halted bool

	pmAgent        agent.Agent
	userInfoFinder UserInfoFinder

	selfID string

	log     *sLogger
	closers []io.Closer

	*instrumenter
}

// New creates a new Specscot from a name, a viper configuration and the PM
// agent to bridge mentions to. It fails if any required configuration is
// missing so a misconfigured process never makes it to the event loop
func New(name string, v *viper.Viper, pmAgent agent.Agent, options ...Option) (s *Specscot, err error) {
	if err = config.ValidateRequired(v); err != nil {
		return nil, err
	}

	s = new(Specscot)
	s.name = name
	s.config = v
	s.channel = v.GetString(config.ChannelKey)
	s.halted = config.GetHaltPipeline(v)
	s.log = &sLogger{logger: log.New(os.Stdout, name+": ", log.Lshortfile|log.LstdFlags), debug: v.GetBool(config.DebugKey)}

	meter := otel.Meter(name)
	s.instrumenter = newInstrumenter(name, meter)
	s.pmAgent = agent.NewAgentWithTelemetry(pmAgent, name, meter)

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

// Close closes anything registered to be closed on shutdown (i.e. a logfile)
func (s *Specscot) Close() (err error) {
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil {
			err = cerr
		}
	}

	return err
}

// Run connects to slack over socket mode and processes app mentions until the
// process is interrupted
func (s *Specscot) Run() (err error) {
	api := slack.New(
		s.config.GetString(config.BotTokenKey),
		slack.OptionDebug(s.config.GetBool(config.DebugKey)),
		slack.OptionAppLevelToken(s.config.GetString(config.AppTokenKey)),
		slack.OptionLog(log.New(os.Stdout, "slack: ", log.Lshortfile|log.LstdFlags)),
	)

	smc := socketmode.New(api,
		socketmode.OptionDebug(s.config.GetBool(config.DebugKey)),
		socketmode.OptionLog(log.New(os.Stdout, "socketmode: ", log.Lshortfile|log.LstdFlags)),
	)

	authTest, err := api.AuthTest()
	if err != nil {
		return errors.Wrap(err, "error authenticating with slack")
	}

	s.selfID = authTest.UserID
	s.log.Debugf("Caching self id [%s] and self name [%s]\n", s.selfID, authTest.User)

	s.userInfoFinder, err = NewCachingUserInfoFinder(s.config, api, s.log)
	if err != nil {
		return err
	}

	sender := &slackMsgSender{api: api}
	uploader := NewFileUploader(api)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go s.watchForTerminationSignalToAbort(cancel)
	go s.runEventLoop(ctx, smc, sender, uploader)

	return smc.RunContext(ctx)
}

// runEventLoop consumes socket mode events and dispatches the events API
// envelopes. Envelopes are acked before processing so slack doesn't redeliver
// while a spec is being generated
func (s *Specscot) runEventLoop(ctx context.Context, smc *socketmode.Client, sender MessageSender, uploader FileUploader) {
	for evt := range smc.Events {
		switch evt.Type {
		case socketmode.EventTypeConnecting:
			s.log.Printf("Connecting to slack over socket mode...\n")

		case socketmode.EventTypeConnected:
			s.log.Printf("Connected to slack\n")

		case socketmode.EventTypeConnectionError:
			s.log.Printf("Connection error: %v\n", evt.Data)

		case socketmode.EventTypeInvalidAuth:
			s.log.Printf("Invalid credentials\n")

		case socketmode.EventTypeEventsAPI:
			eventsAPIEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
			if !ok {
				continue
			}

			smc.Ack(*evt.Request)
			s.dispatchEvent(ctx, eventsAPIEvent, sender, uploader)

		default:
			// Ignoring other events
		}
	}
}

// dispatchEvent starts the processing of an app mention. Each mention runs as
// its own task: mentions share no mutable state and the loop imposes no
// ordering between them
func (s *Specscot) dispatchEvent(ctx context.Context, e slackevents.EventsAPIEvent, sender MessageSender, uploader FileUploader) {
	m, ok := s.mentionToProcess(e)
	if !ok {
		return
	}

	s.coreMetrics.mentionsSeen.Add(ctx, 1, s.coreMetrics.defaultAttrs)

	go s.ProcessMention(ctx, m, sender, uploader)
}

// mentionToProcess extracts the mention to handle from an events API envelope,
// filtering out non-callback events, non-mention events and mentions from the
// bot itself
func (s *Specscot) mentionToProcess(e slackevents.EventsAPIEvent) (m Mention, ok bool) {
	if e.Type != slackevents.CallbackEvent {
		return m, false
	}

	ev, isMention := e.InnerEvent.Data.(*slackevents.AppMentionEvent)
	if !isMention {
		return m, false
	}

	if ev.User == s.selfID {
		s.log.Debugf("Ignoring mention from user [%s] because that's \"us\" [%s]\n", ev.User, s.selfID)

		return m, false
	}

	return Mention{Text: ev.Text, UserID: ev.User, ChannelID: ev.Channel}, true
}

// watchForTerminationSignalToAbort waits for a SIGTERM or SIGINT and cancels the
// socket mode client's context to terminate cleanly. Note that this is meant to
// run in a go routine given that this is blocking
func (s *Specscot) watchForTerminationSignalToAbort(cancel context.CancelFunc) {
	tSignals := make(chan os.Signal, 1)
	// Register to be notified of termination signals so we can abort
	signal.Notify(tSignals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-tSignals

	s.log.Debugf("Received termination signal [%s], shutting down\n", sig)
	cancel()
}
