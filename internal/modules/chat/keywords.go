package chat

import "strings"

type keywordRule struct {
	keywords []string
	reply    string
}

// keywordRules are matched in order against lowercased free text; the
// first rule with any matching keyword wins. Order matters: "hi" would
// otherwise shadow messages like "how much is this".
var keywordRules = []keywordRule{
	{
		keywords: []string{"price", "cost", "how much"},
		reply:    "💰 For detailed pricing, our team can provide a customized quote. Call us at +1-555-123-4567 or schedule a consultation!",
	},
	{
		keywords: []string{"location", "where"},
		reply:    "📍 We have luxury properties in Beverly Hills, Manhattan, Malibu, Aspen, Boston, and Miami. Which location interests you?",
	},
	{
		keywords: []string{"amenities", "facilities"},
		reply:    "✨ Our properties include premium amenities: pools, gyms, concierge, smart home systems, and more. Visit our Projects page for details!",
	},
	{
		keywords: []string{"hello", "hi"},
		reply:    "👋 Hello! How can I assist you today? Browse properties, get info, or schedule a consultation!",
	},
	{
		keywords: []string{"thank"},
		reply:    "😊 You're welcome! Is there anything else I can help you with?",
	},
	{
		keywords: []string{"contact", "phone"},
		reply:    "📞 Contact Us:\n☎️ +1-555-123-4567\n📧 info@luxeestates.com\n💬 WhatsApp: 24/7\n⏰ Mon-Fri: 9AM-6PM",
	},
}

const genericReply = "Great question! For more detailed information, I'd recommend connecting with our sales team. Would you like me to provide contact details or schedule a call?"

// classifyFreeText picks the canned reply for a free-form user message.
func classifyFreeText(text string) string {
	input := strings.ToLower(text)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(input, kw) {
				return rule.reply
			}
		}
	}
	return genericReply
}
