// Package menubot renders a CampusDish menu page into a Slack message
// grouped into meat entrées, vegetarian entrées and sides.
//
// Quick start:
//
//	msg, err := menubot.Render(pageHTML)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	body, _ := msg.SlackJSON()
//	http.Post(webhookURL, "application/json", bytes.NewReader(body))
//
// Render is a pure function of the document and is safe for concurrent use.
// Fetching the page and posting the message are left to the caller; the
// menubot command does both.
package menubot
