package agent

import "strings"

// canned short-circuits messages that never need the model: contact
// lookups, scheduling, the feedback flow, and goodbyes. Order matters;
// "schedule technical visit" must win over the generic "visit" check,
// and the feedback ask must win over the plain goodbye.
func (a *Agent) canned(message string) (string, bool) {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, "customer care number", "contact number"):
		return "Thank you for reaching out! You can contact customer care through our support page: " + a.cfg.SupportURL, true

	case strings.Contains(lower, "schedule technical visit"):
		return "Thank you for your request! To schedule a technical visit, please use our support page: " + a.cfg.SupportURL, true

	case containsAny(lower, "schedule call", "visit", "setup connection"):
		return "We can arrange that. Please share a preferred date and time slot and our team will call you to confirm.", true

	case strings.Contains(lower, "new connection"):
		return "Great, let's get your new connection started. Please share your full address and preferred plan and we will take it from there.", true

	case containsAny(lower, "thank you", "okay bye", "exit"):
		return "Thank you for your message! Please rate our service on a scale of 1 to 5.", true

	case isRating(strings.TrimSpace(message)):
		return ratingReply(strings.TrimSpace(message)), true

	case strings.Contains(lower, "bye"):
		return "Goodbye! Thank you for reaching out. If you need assistance in the future, feel free to contact us again. Have a great day!", true
	}

	return "", false
}

func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func isRating(message string) bool {
	switch message {
	case "1", "2", "3", "4", "5":
		return true
	}
	return false
}

func ratingReply(rating string) string {
	switch rating {
	case "4", "5":
		return "Thank you for your feedback! You rated our service as " + rating + ", excellent!"
	case "3":
		return "Thank you for your feedback! You rated our service as " + rating + ", satisfactory."
	default:
		return "Thank you for your feedback! You rated our service as " + rating + ". Please share suggestions for improvement."
	}
}
