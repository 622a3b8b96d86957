/*
Package specscot provides a slack bot bridging app mentions to a PM agent that
drafts specs.

The flow for each mention is linear: when the bot is mentioned, it
acknowledges the request, hands the mention text to the PM agent, writes the
agent's summary to a temporary spec.md artifact and uploads it to the
configured channel. Any failure along the way is reported back on the channel
where the mention happened. An operator can short-circuit the whole pipeline
with the HALT_PIPELINE environment variable without stopping the process.

Example code (see cmd/specscot for the full version):

	package main

	import (
		"context"
		"log"

		"github.com/alexandre-normand/specscot"
		"github.com/alexandre-normand/specscot/agent"
		"github.com/alexandre-normand/specscot/config"
	)

	func main() {
		v := config.NewViperWithDefaults()

		pmAgent, err := agent.NewGemini(context.Background(), v.GetString(config.GeminiAPIKeyKey), v.GetString(config.ModelKey), v.GetInt(config.MaxAgentTurnsKey))
		if err != nil {
			log.Fatal(err)
		}

		bot, err := specscot.New("specscot", v, pmAgent)
		if err != nil {
			log.Fatal(err)
		}
		defer bot.Close()

		err = bot.Run()
		if err != nil {
			log.Fatal(err)
		}
	}
*/
package specscot
