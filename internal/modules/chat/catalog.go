package chat

import (
	"fmt"
	"time"
)

// CatalogEntry is one node of the scripted response tree: the canned reply
// plus the follow-up choices it offers, if any.
type CatalogEntry struct {
	Reply   string
	Options []Option
}

// fallbackReply is returned for any option id the catalog does not know.
// Unknown ids are terminal, not errors.
const fallbackReply = "Thank you for your interest. How else can we assist you?"

// terminalOptionIDs are ids that are offered as choices but intentionally
// have no catalog entry — selecting one resolves to the fallback reply.
var terminalOptionIDs = map[string]bool{
	"gallery": true,
}

// WelcomeMessages is the fixed sequence seeded into every new transcript.
func WelcomeMessages(now time.Time) []Message {
	return []Message{
		{
			ID:        "1",
			Role:      RoleBot,
			Text:      "👋 Welcome to Luxe Estate Support! I'm your AI Assistant.",
			Timestamp: now,
		},
		{
			ID:        "2",
			Role:      RoleBot,
			Text:      "Adarsh Group - A name synonymous with quality and trust since its inception has built its reputation brick by brick, not just meeting expectations, but far exceeding them. Building beautiful homes that are nestled in natural surroundings yet a stone's throw away from the hustle-bustle of the city is a dream we have been realizing for over three decades.",
			Timestamp: now,
		},
		{
			ID:   "3",
			Role: RoleBot,
			Text: "May I know if you are looking for?",
			Options: []Option{
				{Label: "🏠 Property for purchase", ID: "property_purchase"},
				{Label: "❓ Generic Queries", ID: "generic_queries"},
				{Label: "📚 FAQ & Tips", ID: "faq_tips"},
				{Label: "💡 Investment Insights", ID: "investment_insights"},
				{Label: "🏦 Financing Options", ID: "financing_options"},
				{Label: "🎯 Find Perfect Home", ID: "find_home"},
				{Label: "📅 Schedule a Tour", ID: "schedule_tour"},
				{Label: "❓ Customer Q&A", ID: "customer_qa"},
				{Label: "🤝 Vendor/Joint Ventures", ID: "vendor_ventures"},
				{Label: "💼 Career", ID: "career"},
				{Label: "📋 More Info", ID: "more_info"},
			},
			Timestamp: now,
		},
	}
}

// catalog is the complete scripted response tree. The text is hand-authored
// marketing copy; keep it byte-for-byte stable, downstream snapshots depend
// on it.
var catalog = map[string]CatalogEntry{
	"property_purchase": {
		Reply: "🏠 Great! You're interested in purchasing a property.\n\nWe offer:\n• Luxury Villas\n• Modern Penthouses\n• Oceanfront Estates\n• Premium Condos\n\nWould you like to:",
		Options: []Option{
			{Label: "🔍 Browse Properties", ID: "browse_properties"},
			{Label: "💰 Check Pricing", ID: "check_pricing"},
			{Label: "📞 Talk to Agent", ID: "talk_to_agent"},
		},
	},
	"generic_queries": {
		Reply: "❓ We're happy to help! Popular questions:\n\n• What are your payment plans?\n• What amenities are included?\n• How far from the city center?\n• What's the current availability?\n\nOr ask your custom question below:",
	},
	"faq_tips": {
		Reply: "📚 FAQ & Real Estate Tips\n\nSelect a topic:",
		Options: []Option{
			{Label: "❓ How to get pre-approved?", ID: "faq_preapproval"},
			{Label: "🏡 First-time buyer guide", ID: "faq_firsttime"},
			{Label: "📊 What's included in price?", ID: "faq_included"},
			{Label: "💡 Investment tips", ID: "faq_tips_invest"},
		},
	},
	"faq_preapproval": {
		Reply: "✅ How to Get Pre-Approved:\n\n1. Check your credit score (700+ ideal)\n2. Gather financial documents (bank statements, tax returns)\n3. Submit application to our lenders\n4. Property appraisal conducted\n5. Receive pre-approval letter\n\n⏱️ Process: 3-5 business days\n\n📞 Call our finance team for guidance!",
	},
	"faq_firsttime": {
		Reply: "🏡 First-Time Buyer Guide:\n\n✨ 6 Steps to Success:\n1. Get pre-approved for a mortgage\n2. Browse properties within budget\n3. Schedule property tours\n4. Make an offer\n5. Home inspection & appraisal\n6. Final walkthrough & closing\n\n💰 Budget: Calculate 20% down payment + closing costs\n📋 Timeline: Usually 30-45 days from offer to closing\n\nWe guide you every step!",
	},
	"faq_included": {
		Reply: "📋 What's Included in Price:\n\n✅ Property & Land\n✅ All Fixtures & Fittings\n✅ Smart Home Systems\n✅ Parking Spaces\n✅ Premium Finishes\n✅ Warranty (1-2 years)\n\n❌ Typically NOT Included:\n• Furniture (unless specified)\n• Personal items\n• Some appliances\n\nCustomization available! Ask about add-ons.",
	},
	"faq_tips_invest": {
		Reply: "💡 Real Estate Investment Tips:\n\n1️⃣ Location > Size (prime locations appreciate faster)\n2️⃣ Buy for cash flow (rent potential for investors)\n3️⃣ Research market trends (growth areas)\n4️⃣ Diversify portfolio (mix property types)\n5️⃣ Consider rental yield (typical: 4-8%)\n6️⃣ Plan exit strategy (resale vs. hold)\n\n📊 Our properties: Avg. 6-7% annual appreciation\n\nWant investment analysis?",
	},
	"investment_insights": {
		Reply: "💡 Investment Insights\n\nExplore key metrics:",
		Options: []Option{
			{Label: "📈 Expected ROI", ID: "invest_roi"},
			{Label: "🏠 Rental yield info", ID: "invest_yield"},
			{Label: "📊 Market trends", ID: "invest_trends"},
			{Label: "🎯 Best investment areas", ID: "invest_areas"},
		},
	},
	"invest_roi": {
		Reply: "📈 Expected Return on Investment (ROI):\n\n🏖️ Oceanfront Estate\nInitial: $22.8M → 5 Years: $28.5M (25% ROI)\n\n🏢 Penthouse Suite\nInitial: $15.2M → 5 Years: $18.6M (22% ROI)\n\n🏔️ Mountain Villa\nInitial: $12.5M → 5 Years: $15.2M (22% ROI)\n\n📊 Average Market Growth: 5-7% annually\n\nNote: Past performance ≠ guaranteed future results\nConsult financial advisor for personalized projections!",
	},
	"invest_yield": {
		Reply: "🏠 Rental Yield Information:\n\n💰 Average Rental Yield: 4-8% per annum\n\nExample (Penthouse Suite - $15.2M):\n• Annual Rent: $600,000-$800,000\n• Monthly Rent: $50,000-$67,000\n• Yield: ~4.7%\n\n✅ High-demand locations guarantee occupancy\n✅ Professional management available\n✅ Annual rent increases: 2-3%\n\n📞 Property management service: 8-10% of rent\n\nInterested in rental program?",
	},
	"invest_trends": {
		Reply: "📊 Current Market Trends (2024):\n\n📈 Growth Markets:\n• Beverly Hills: +7.2% YoY\n• Manhattan: +5.8% YoY\n• Malibu: +6.5% YoY\n• Miami: +8.1% YoY\n\n🔍 Market Drivers:\n✅ Low interest rates\n✅ High demand for luxury\n✅ Limited supply\n✅ Strong buyer demographics\n\n⚠️ Forecast: Stable-to-bullish through 2025\n\nWant property-specific analysis?",
	},
	"invest_areas": {
		Reply: "🎯 Best Investment Areas (Currently):\n\n🥇 TIER 1 (Highest Growth):\n• Miami, FL (+8.1% annually)\n• Aspen, CO (+7.5% annually)\n\n🥈 TIER 2 (Strong Performance):\n• Beverly Hills, CA (+7.2%)\n• Malibu, CA (+6.5%)\n\n🥉 TIER 3 (Steady Growth):\n• Manhattan, NY (+5.8%)\n• Boston, MA (+5.2%)\n\n💡 Best for: Luxury + Growth + Strong Rental Demand\n\nSchedule investor consultation?",
	},
	"financing_options": {
		Reply: "🏦 Financing Options\n\nChoose your financing path:",
		Options: []Option{
			{Label: "📋 Mortgage programs", ID: "financing_mortgage"},
			{Label: "💳 Payment plans", ID: "financing_plans"},
			{Label: "📊 Interest rates", ID: "financing_rates"},
			{Label: "✅ Eligibility requirements", ID: "financing_eligibility"},
		},
	},
	"financing_mortgage": {
		Reply: "📋 Mortgage Programs Available:\n\n1️⃣ Fixed-Rate (15/20/30 years)\n✅ Stable monthly payments\n✅ Predictable over time\n💰 Rates: 6.5-7.5% (market dependent)\n\n2️⃣ Adjustable-Rate (ARM)\n✅ Lower initial rates\n✅ Adjusts after 5/7 years\n💰 Rates: 5.8-6.8% initially\n\n3️⃣ Interest-Only Option\n✅ Pay only interest (5-10 years)\n✅ Lower monthly payments initially\n💰 Then convert to principal + interest\n\n4️⃣ Jumbo Loans (>$1M)\n✅ Customized terms\n✅ Specialized lender partnerships\n\n📞 Get pre-approval: 48-72 hours!",
	},
	"financing_plans": {
		Reply: "💳 Flexible Payment Plans:\n\n📅 PLAN A: 50/50 Split\n• 50% down payment at signing\n• 50% on possession\n• Duration: Flexible\n\n📅 PLAN B: Staged Payment\n• 30% booking\n• 35% mid-construction\n• 35% on completion\n• Duration: 18-24 months\n\n📅 PLAN C: Post-Possession\n• 40% at booking\n• 60% after 6 months possession\n• Zero interest if paid on time\n\n📅 PLAN D: Custom\n• Tailor to your cash flow\n• Special rates for bulk purchases\n\n💰 Special: 5% discount for full upfront payment!\n\nWhich suits you best?",
	},
	"financing_rates": {
		Reply: "📊 Current Interest Rates (2024):\n\n🏦 Our Partner Lenders:\n\n30-Year Fixed:\n💰 6.5-7.0% (Tier 1 credit)\n💰 7.0-7.5% (Tier 2 credit)\n\n15-Year Fixed:\n💰 6.0-6.5% (Tier 1 credit)\n💰 6.5-7.0% (Tier 2 credit)\n\n7/1 ARM:\n💰 5.8-6.2% (Tier 1 credit)\n💰 6.2-6.8% (Tier 2 credit)\n\n📈 Rates Updated: Weekly\n✅ Lock rates for 60 days\n\n💡 Higher down payment = Lower rate\n📞 Get personalized quote in 24 hours!",
	},
	"financing_eligibility": {
		Reply: "✅ Financing Eligibility Requirements:\n\n📋 Basic Criteria:\n✅ Credit Score: 700+ (620 minimum)\n✅ Debt-to-Income: <43% (43-50% with strong reserves)\n✅ Employment: 2+ years stable history\n✅ Savings: 2-6 months mortgage reserves\n\n💼 For Self-Employed/Business Owners:\n✅ Tax returns: 2 years\n✅ Business financials: Verified\n✅ Higher down payment may be required\n\n📊 For Investors:\n✅ Strong cash reserves (6-12 months)\n✅ Rental history documentation\n✅ Portfolio verification\n✅ Down payment: 25-30% minimum\n\n📞 Unsure? Schedule free consultation!\n✅ We help optimize your financial profile!",
	},
	"find_home": {
		Reply: "🎯 Find Your Perfect Home - Quick Quiz\n\nLet's narrow down your ideal property!",
		Options: []Option{
			{Label: "💰 What's your budget?", ID: "quiz_budget"},
			{Label: "📍 Preferred location?", ID: "quiz_location"},
			{Label: "🏠 Property type?", ID: "quiz_type"},
		},
	},
	"quiz_budget": {
		Reply: "💰 Budget Range:\n\nSelect your price range:",
		Options: []Option{
			{Label: "💵 $3M - $8M", ID: "budget_3_8"},
			{Label: "💵 $8M - $15M", ID: "budget_8_15"},
			{Label: "💵 $15M - $25M", ID: "budget_15_25"},
			{Label: "💵 $25M+", ID: "budget_25plus"},
		},
	},
	"budget_3_8": {
		Reply: "✅ Budget: $3M - $8M\n\n🎯 Recommended Properties:\n\n🏙️ Luxury Condo ($3.2M)\n📍 Prime location, modern amenities\n🛏️ 3 beds | 2.5 baths\n\n🏛️ Modern Villa ($8.5M)\n📍 Contemporary design, smart home\n🛏️ 5 beds | 4 baths\n\n📞 Ready to view? Call our agents!\n☎️ +1-555-123-4567",
	},
	"budget_8_15": {
		Reply: "✅ Budget: $8M - $15M\n\n🎯 Recommended Properties:\n\n🏔️ Mountain Villa ($12.5M)\n📍 Stunning views, luxury finishes\n🛏️ 6 beds | 5 baths\n\n🏢 Penthouse Suite ($15.2M)\n📍 Skyline views, premium amenities\n🛏️ 4 beds | 3.5 baths\n\n📞 Schedule private viewing!\n☎️ +1-555-123-4567",
	},
	"budget_15_25": {
		Reply: "✅ Budget: $15M - $25M\n\n🎯 Recommended Properties:\n\n🏖️ Oceanfront Estate ($22.8M)\n📍 Beachfront, ultimate luxury\n🛏️ 8 beds | 7 baths\n\nNote: Our premium properties in this range are typically custom showcased.\n\n📞 Get exclusive viewings!\n☎️ +1-555-123-4567",
	},
	"budget_25plus": {
		Reply: "💎 Budget: $25M+\n\n🎯 Ultra-Luxury Portfolio\n\nWe have exclusive off-market properties in this range, including:\n\n✨ Custom developments\n✨ Trophy assets\n✨ Investment portfolios\n✨ Bespoke luxury experiences\n\n📞 Exclusive Concierge Service\n☎️ VIP Line: +1-555-999-8888\n📧 vip@luxeestates.com\n💬 WhatsApp Priority: Available 24/7",
	},
	"quiz_location": {
		Reply: "📍 Preferred Location:\n\nWhere would you like to invest?",
		Options: []Option{
			{Label: "🌴 Miami, Florida", ID: "loc_miami"},
			{Label: "🏔️ Aspen, Colorado", ID: "loc_aspen"},
			{Label: "🌆 Beverly Hills, California", ID: "loc_beverly"},
			{Label: "🌊 Malibu, California", ID: "loc_malibu"},
			{Label: "🗽 Manhattan, New York", ID: "loc_manhattan"},
			{Label: "🇺🇸 Boston, Massachusetts", ID: "loc_boston"},
		},
	},
	"loc_miami": {
		Reply: "🌴 Miami, Florida - The Ultimate Destination\n\n📊 Market Insights:\n✅ Fastest growing: +8.1% annually\n✅ Strong rental demand (6-8% yield)\n✅ Perfect for investors & luxury buyers\n✅ Year-round climate\n\n🏠 Available Properties:\n• Luxury Condo: $3.2M\n• Modern Villa: $8.5M\n• Premium Penthouse: $15.2M\n\n☀️ Why Miami?\n• Tax advantages\n• International appeal\n• Growing luxury market\n\n📞 Miami specialist: +1-555-123-4567",
	},
	"loc_aspen": {
		Reply: "🏔️ Aspen, Colorado - Mountain Luxury Paradise\n\n📊 Market Insights:\n✅ Exclusive mountain destination: +7.5% growth\n✅ Premium rental market (summer & winter)\n✅ World-class amenities & lifestyle\n✅ Perfect for high-net-worth individuals\n\n🏠 Available Properties:\n• Mountain Villa: $12.5M\n• Luxury Estate: Custom options\n\n❄️ Why Aspen?\n• World-class skiing\n• Cultural hub\n• Elite community\n• Strong investment potential\n\n📞 Mountain property expert: +1-555-123-4567",
	},
	"loc_beverly": {
		Reply: "🌆 Beverly Hills, California - Hollywood's Crown Jewel\n\n📊 Market Insights:\n✅ Iconic luxury market: +7.2% growth\n✅ Strong appreciation potential\n✅ Celebrity & mogul enclave\n✅ Steady 4-6% rental yield\n\n🏠 Available Properties:\n• Modern Villa: $8.5M\n• Premium Penthouse: $15.2M\n\n💎 Why Beverly Hills?\n• Most prestigious address\n• Top schools & shopping\n• Security & privacy\n• Best-in-class amenities\n\n📞 Beverly Hills specialist: +1-555-123-4567",
	},
	"loc_malibu": {
		Reply: "🌊 Malibu, California - Beachfront Paradise\n\n📊 Market Insights:\n✅ Coastal luxury: +6.5% growth\n✅ Limited supply increases value\n✅ High tourism rental demand\n✅ 5-7% annual yield\n\n🏠 Available Properties:\n• Oceanfront Estate: $22.8M\n• Beach Villa: $12.5M+\n\n🏖️ Why Malibu?\n• Pristine beaches\n• Privacy & exclusivity\n• Hollywood connections\n• Environmental beauty\n\n📞 Coastal property expert: +1-555-123-4567",
	},
	"loc_manhattan": {
		Reply: "🗽 Manhattan, New York - The City That Never Sleeps\n\n📊 Market Insights:\n✅ Steady growth: +5.8% annually\n✅ Global business hub\n✅ Strong rental market (4-6% yield)\n✅ Timeless investment\n\n🏠 Available Properties:\n• Luxury Penthouse: $15.2M+\n• Premium Condo: $3.2M+\n\n🏙️ Why Manhattan?\n• Financial capital\n• World-class dining & culture\n• Unmatched walkability\n• Strong international demand\n\n📞 NYC specialist: +1-555-123-4567",
	},
	"loc_boston": {
		Reply: "🇺🇸 Boston, Massachusetts - Historic Luxury Meets Innovation\n\n📊 Market Insights:\n✅ Growing market: +5.2% annually\n✅ Tech hub prosperity\n✅ Strong institutional foundation\n✅ 4-5% rental yield\n\n🏠 Available Properties:\n• Modern Villa: $8.5M+\n• Premium Penthouse: $15.2M+\n\n🎓 Why Boston?\n• Prestigious universities\n• Thriving tech scene\n• Rich history & culture\n• Excellent schools\n\n📞 Boston property team: +1-555-123-4567",
	},
	"quiz_type": {
		Reply: "🏠 Property Type Preference:\n\nWhat's your ideal property?",
		Options: []Option{
			{Label: "🏖️ Oceanfront/Beachfront", ID: "type_ocean"},
			{Label: "🏔️ Mountain/Resort", ID: "type_mountain"},
			{Label: "🏢 Urban/Penthouse", ID: "type_urban"},
			{Label: "🏡 Villa/Estate", ID: "type_villa"},
			{Label: "🏙️ Downtown Luxury Condo", ID: "type_condo"},
		},
	},
	"type_ocean": {
		Reply: "🏖️ Oceanfront Properties - Lifestyle & Investment\n\n✨ Premium Features:\n✅ Direct beachfront access\n✅ Sunset views (premium value)\n✅ Water sports amenities\n✅ Privacy gates & security\n✅ High rental potential\n\n💰 Our Oceanfront Gem:\n🏖️ Oceanfront Estate: $22.8M\n📍 Malibu, California\n🛏️ 8 beds | 7 baths | Ocean views\n\n📈 Investment Potential:\n• Strong appreciation\n• Premium rental rates ($50K+/month)\n• Lifestyle & financial gains\n\n📞 Schedule private tour!\n☎️ +1-555-123-4567",
	},
	"type_mountain": {
		Reply: "🏔️ Mountain Properties - Serenity & Prestige\n\n✨ Premium Features:\n✅ Panoramic views\n✅ Private trails & nature\n✅ Ski access (Aspen)\n✅ Air quality & tranquility\n✅ Exclusive communities\n\n💰 Our Mountain Treasures:\n🏔️ Mountain Villa: $12.5M\n📍 Aspen, Colorado\n🛏️ 6 beds | 5 baths | Alpine luxury\n\n📈 Investment Potential:\n• Seasonal rental premium\n• Resort town appreciation\n• Lifestyle value unmatched\n\n📞 Mountain specialist!\n☎️ +1-555-123-4567",
	},
	"type_urban": {
		Reply: "🏢 Urban Penthouse - City Sophistication\n\n✨ Premium Features:\n✅ Skyline/city views\n✅ Walking distance to everything\n✅ 24/7 concierge services\n✅ Building amenities (pool, gym)\n✅ Urban investment appeal\n\n💰 Our Urban Palaces:\n🏢 Penthouse Suite: $15.2M\n📍 Manhattan, New York\n🛏️ 4 beds | 3.5 baths | Skyline views\n\n📈 Investment Potential:\n• Consistent appreciation\n• Strong short-term rentals\n• Urban lifestyle premium\n\n📞 NYC luxury specialist!\n☎️ +1-555-123-4567",
	},
	"type_villa": {
		Reply: "🏡 Villa/Estate - Space & Elegance\n\n✨ Premium Features:\n✅ Land ownership (privacy)\n✅ Custom architecture\n✅ Multiple living spaces\n✅ Entertainment venues\n✅ Investment & lifestyle blend\n\n💰 Our Villa Collections:\n🏛️ Modern Villa: $8.5M\n🏔️ Mountain Villa: $12.5M\n📍 Various locations\n🛏️ 5-6 beds | Premium finishes\n\n📈 Investment Potential:\n• Land appreciation\n• Generational asset\n• Family compound potential\n\n📞 Villa specialist team!\n☎️ +1-555-123-4567",
	},
	"type_condo": {
		Reply: "🏙️ Luxury Condo - Urban Convenience\n\n✨ Premium Features:\n✅ Low maintenance\n✅ Prime locations\n✅ Community amenities\n✅ Entry-level luxury\n✅ Investment potential\n\n💰 Our Condo Masterpiece:\n🏙️ Luxury Condo: $3.2M\n📍 Prime Location\n🛏️ 3 beds | 2.5 baths | Modern design\n\n📈 Investment Potential:\n• Easier entry price\n• Strong rental market\n• Urban growth areas\n• Appreciation potential\n\n📞 Condo investment expert!\n☎️ +1-555-123-4567",
	},
	"schedule_tour": {
		Reply: "📅 Schedule Your Private Viewing\n\nWe offer exclusive property tours:\n\n✅ 1-on-1 private viewings\n✅ Virtual tours available\n✅ Custom time slots\n✅ Personalized consultation\n\n📞 Contact our tour specialists:\n\n☎️ Phone: +1-555-123-4567\n📧 Email: tours@luxeestates.com\n💬 WhatsApp: Click to chat\n📅 Website: luxeestates.com/schedule\n\n💡 Best times: 10 AM - 4 PM (EST)\n\nWhat property interests you most?",
	},
	"customer_qa": {
		Reply: "❓ Real Customer Questions & Answers\n\nLearn from actual buyer experiences:",
		Options: []Option{
			{Label: "Q: How long is closing process?", ID: "qa_closing_time"},
			{Label: "Q: Can I negotiate the price?", ID: "qa_negotiate"},
			{Label: "Q: What about property taxes?", ID: "qa_taxes"},
			{Label: "Q: Is inspection mandatory?", ID: "qa_inspection"},
			{Label: "Q: How is rental income handled?", ID: "qa_rental"},
			{Label: "Q: What if I need to sell quickly?", ID: "qa_quick_sell"},
		},
	},
	"qa_closing_time": {
		Reply: "❓ CUSTOMER QUESTION:\n\"How long does the closing process typically take?\"\n\n✅ ANSWER FROM OUR EXPERTS:\n\n📅 Timeline Breakdown:\n\n🔵 Average Closing: 30-45 days\n\n📋 Process Steps (Timeline):\n• Week 1: Offer accepted & inspection period\n• Week 2-3: Appraisal conducted\n• Week 3-4: Underwriting review\n• Week 4-5: Title search completed\n• Week 5-6: Final walk-through & closing\n\n⚡ EXPRESS CLOSING (With us):\n• Cash buyers: 10-15 days\n• Pre-approved buyers: 20-25 days\n• Standard buyers: 30-45 days\n\n💡 HOW WE HELP:\n✅ Dedicated closing coordinator\n✅ Expedited underwriting\n✅ Clear communication at each step\n✅ Prepared closing documents\n\n💰 COSTS TO EXPECT:\n• Closing costs: 2-5% of purchase price\n• Included: legal fees, appraisal, title insurance\n\n📞 Questions? Call our closing team: +1-555-123-4567",
	},
	"qa_negotiate": {
		Reply: "❓ CUSTOMER QUESTION:\n\"Can I negotiate the listed price?\"\n\n✅ ANSWER FROM OUR EXPERTS:\n\n🤝 YES - Price Negotiation is COMMON!\n\n📊 NEGOTIATION SCENARIOS:\n\n1️⃣ NEW MARKET CONDITIONS:\n✅ Property on market 60+ days → negotiate\n✅ Multiple similar properties available → leverage\n✅ Buyer's market (many homes) → negotiate\n\n2️⃣ INSPECTION FINDINGS:\n✅ Major repairs needed → 5-10% reduction\n✅ Cosmetic issues → 2-3% reduction\n✅ System updates required → negotiate items\n\n3️⃣ MARKET POSITION:\n✅ Luxury market: 5-15% negotiable\n✅ Off-season buys: 5-10% discount possible\n✅ Portfolio deals: 10-20% negotiable\n\n💡 REAL EXAMPLE:\nCustomer Sarah negotiated $1.2M off a $15M penthouse!\n✅ Reason: Inspector found HVAC upgrades needed\n✅ Result: 8% savings on purchase\n\n📞 OUR NEGOTIATION STRATEGY:\n✅ Market analysis & comps research\n✅ Strategic offer positioning\n✅ Professional negotiators\n✅ Maximize buyer position\n\n🎯 TYPICAL OUTCOMES:\n• 3-8% price reduction achieved\n• Additional incentives negotiated\n• Terms favorable to buyers\n\n📞 Want negotiation help? Call: +1-555-123-4567",
	},
	"qa_taxes": {
		Reply: "❓ CUSTOMER QUESTION:\n\"How much are property taxes and ongoing costs?\"\n\n✅ ANSWER FROM OUR EXPERTS:\n\n💰 PROPERTY TAX BREAKDOWN BY LOCATION:\n\n📍 Miami, Florida:\n✅ Tax Rate: 0.83% annually\n✅ Example: $3M property = $24,900/year\n✅ Homestead exemption available: Save $50K+\n\n📍 Beverly Hills, California:\n✅ Tax Rate: 0.76% annually\n✅ Example: $15M property = $114,000/year\n✅ Prop 13 benefits long-term owners\n\n📍 New York (Manhattan):\n✅ Tax Rate: 0.85% annually\n✅ Example: $15M property = $127,500/year\n✅ Additional city taxes apply\n\n📍 Colorado (Aspen):\n✅ Tax Rate: 0.51% annually\n✅ Example: $12M property = $61,200/year\n✅ Most affordable option!\n\n💸 OTHER ANNUAL COSTS:\n🏠 HOA/Maintenance: $200-500/month\n🔒 Security/Insurance: $100-300/month\n🌳 Landscaping/Upkeep: $150-400/month\n⚡ Utilities: $300-800/month\n\n📊 TOTAL ANNUAL BUDGET EXAMPLE ($15M Home):\n• Property Tax: $114,000\n• Insurance: $3,600\n• HOA/Maintenance: $6,000\n• Utilities: $9,600\n• Landscaping: $3,600\n• 💵 TOTAL: ~$137,000/year ($11,400/month)\n\n💡 TAX STRATEGIES:\n✅ Homestead exemptions\n✅ Trust ownership benefits\n✅ Depreciation deductions (investors)\n✅ 1031 exchanges for reinvestment\n\n📞 Consult our tax advisor: +1-555-123-4567",
	},
	"qa_inspection": {
		Reply: "❓ CUSTOMER QUESTION:\n\"Is a home inspection mandatory? What does it cover?\"\n\n✅ ANSWER FROM OUR EXPERTS:\n\n🔍 IS INSPECTION MANDATORY?\n\n✅ NOT legally required (except by lenders)\n✅ HIGHLY RECOMMENDED (protects you!)\n✅ Typical cost: $500-1,500\n✅ Takes 2-4 hours\n\n📋 INSPECTION COVERAGE:\n\n🏗️ STRUCTURAL:\n✅ Foundation integrity\n✅ Walls, roof, chimney\n✅ Basement conditions\n✅ Drainage systems\n\n🔧 MECHANICAL SYSTEMS:\n✅ HVAC (heating/cooling)\n✅ Plumbing (leaks, water pressure)\n✅ Electrical (safety, capacity)\n✅ Water heater age & function\n\n🪟 INTERIOR ELEMENTS:\n✅ Windows & doors\n✅ Flooring conditions\n✅ Drywall/paint\n✅ Kitchen appliances\n\n❌ TYPICALLY NOT INCLUDED:\n• Septic systems (separate inspection)\n• Radon testing (separate test)\n• Pest inspection (separate inspection)\n• Pool/spa (specialized inspector)\n• Environmental concerns (Phase I survey)\n\n💡 REAL CUSTOMER EXPERIENCE:\n\n👤 Michael (Manhattan Penthouse Buyer):\n\"Inspection found $50K in HVAC upgrades needed.\"\n✅ Used as negotiation leverage\n✅ Seller covered $30K in repairs\n✅ Saved on future maintenance!\n\n📊 INSPECTION RESULTS:\n• 20% find major issues (>$10K)\n• 40% find minor issues ($1-5K)\n• 40% pass with flying colors\n\n✅ OUR ADVANTAGE:\nWe provide pre-inspection reports! You know issues BEFORE bidding.\n\n📞 Schedule inspection: +1-555-123-4567",
	},
	"qa_rental": {
		Reply: "❓ CUSTOMER QUESTION:\n\"How does rental income work if I rent out the property?\"\n\n✅ ANSWER FROM OUR EXPERTS:\n\n💰 RENTAL INCOME MODEL:\n\n📊 REVENUE STRUCTURE:\n\n1️⃣ INCOME SOURCES:\n✅ Monthly rent (primary)\n✅ Seasonal premium (high season +30-50%)\n✅ Additional fees (parking, amenities)\n✅ Damage deposits (security)\n\n📈 TYPICAL LUXURY RENTAL RATES:\n\n🏖️ Oceanfront ($22.8M property):\n• Monthly: $50,000-$75,000\n• Annual: $600,000-$900,000\n• Yield: 2.6%-3.9%\n\n🏢 Penthouse ($15.2M property):\n• Monthly: $30,000-$45,000\n• Annual: $360,000-$540,000\n• Yield: 2.4%-3.6%\n\n🏔️ Mountain Villa ($12.5M property):\n• Monthly: $25,000-$40,000\n• Annual: $300,000-$480,000\n• Yield: 2.4%-3.8%\n\n💸 EXPENSES TO DEDUCT:\n\n📋 ANNUAL COSTS:\n✅ Property management: 8-10% of rent\n✅ Maintenance/repairs: 5-10% of rent\n✅ Insurance: $3,600-$8,000/year\n✅ Property taxes: Varies by location\n✅ HOA fees: $2,000-$5,000/month\n✅ Utilities: $300-$800/month\n✅ Vacancy loss (est.): 10-15%\n✅ Advertising/marketing: $500-$2,000/month\n\n📊 PROFIT CALCULATION (Example):\n\nPenthouse $15.2M - $40,000/month rent:\n• Annual Revenue: $480,000\n• Property Mgmt (10%): -$48,000\n• Maintenance (7%): -$33,600\n• Insurance: -$6,000\n• Taxes & HOA: -$60,000\n• Vacancy (12%): -$57,600\n• 💵 NET PROFIT: $274,800/year (57% yield after costs)\n\n✅ OUR PROPERTY MANAGEMENT:\n• Professional tenant screening\n• 24/7 maintenance coordination\n• Monthly financial reporting\n• Full accounting support\n• Handles all tenant issues\n\n📞 Rental income strategy: +1-555-123-4567",
	},
	"qa_quick_sell": {
		Reply: "❓ CUSTOMER QUESTION:\n\"What if I need to sell quickly? Will I lose money?\"\n\n✅ ANSWER FROM OUR EXPERTS:\n\n⏰ QUICK SALE OPTIONS:\n\n1️⃣ TRADITIONAL FAST SALE (30-60 days):\n✅ MLS listing at market price\n✅ Professional marketing push\n✅ Multiple showings/offers\n✅ Competitive bidding\n💰 Typical loss: 0-2% (commission + fees)\n\n2️⃣ EXPRESS SALE (15-30 days):\n✅ Aggressive pricing (2-5% below market)\n✅ Multiple marketing channels\n✅ Weekly open houses\n✅ Direct buyer outreach\n💰 Typical loss: 2-5%\n\n3️⃣ EMERGENCY SALE (7-14 days):\n✅ Motivated seller pricing (5-10% reduction)\n✅ Cash buyers only\n✅ As-is condition\n✅ Direct negotiation\n💰 Typical loss: 5-10%\n\n4️⃣ PORTFOLIO BUYBACK (our option):\n✅ We buy your property directly\n✅ Guaranteed close in 10 days\n✅ No market risk\n✅ Competitive offer (market minus 8-12%)\n💰 Typical loss: 8-12% (but guaranteed!)\n\n💡 REAL CUSTOMER SUCCESS:\n\n👤 Jennifer (Emergency Relocation):\n\"Had 20 days to sell $8.5M villa for job transfer.\"\n✅ Listed at 5% below market ($8.075M)\n✅ Received 3 offers in 10 days\n✅ Sold in 25 days\n✅ Loss: Only 3% ($255K)\n✅ Timeline: Met requirement!\n\n📊 COST ANALYSIS:\n\n📈 TRADITIONAL SALE (90 days):\n• Realtor commission: 5-6%\n• Closing costs: 1-2%\n• Holding costs: $30K/month × 3 = $90K\n• 💵 Total cost: 8-10% loss\n\n⚡ EXPRESS SALE (30 days):\n• Realtor commission: 5-6%\n• Closing costs: 1-2%\n• Holding costs: $30K × 1 = $30K\n• Price reduction: 2-5%\n• 💵 Total cost: 5-8% loss\n\n🚀 EMERGENCY BUYBACK (10 days):\n• No realtor commission\n• No marketing costs\n• No holding costs\n• Direct buyback: 8-12% discount\n• 💵 Total cost: 8-12% loss (but GUARANTEED CLOSE)\n\n✅ WAYS TO MINIMIZE LOSS:\n✅ Maintain property in excellent condition\n✅ Price competitively from day 1\n✅ Use professional staging\n✅ Aggressive marketing\n✅ Flexible closing timeline\n✅ Our fast-track sale program\n\n📞 Need quick sale? Call immediately: +1-555-123-4567\n🔥 We can often close in 10 days!",
	},
	"vendor_ventures": {
		Reply: "🤝 Interested in business partnerships?\n\nWe collaborate on:\n• Construction Projects\n• Interior Design\n• Property Management\n• Joint Ventures\n\nContact Details:\n📧 partnerships@luxeestates.com\n📞 +1-555-987-6543",
	},
	"career": {
		Reply: "💼 Join Our Team!\n\nOpen Positions:\n• Sales Executive\n• Property Manager\n• Interior Designer\n• Marketing Specialist\n• Operations Head\n\nApply at:\n📧 careers@luxeestates.com",
	},
	"more_info": {
		Reply: "📋 Additional Information:\n\n✅ Established: 2008\n✅ Properties: 500+\n✅ Clients: Happy customers in 15+ markets\n✅ Awards: Best Luxury Real Estate Developer\n\nWhat else can I help you with?",
		Options: []Option{
			{Label: "🏘️ View Master Plan", ID: "master_plan"},
			{Label: "📸 Gallery", ID: "gallery"},
			{Label: "⭐ Testimonials", ID: "testimonials"},
		},
	},
	"browse_properties": {
		Reply: "🔍 Explore our exclusive collection:\n\n📍 Locations:\n• Beverly Hills, CA\n• Manhattan, NY\n• Malibu, CA\n• Aspen, CO\n• Boston, MA\n• Miami, FL\n\nVisit our Projects page for detailed listings!",
	},
	"check_pricing": {
		Reply: "💰 Pricing Information:\n\n🏖️ Oceanfront Estate: $22.8M\n🏢 Penthouse Suite: $15.2M\n🏔️ Mountain Villa: $12.5M\n🏛️ Modern Villa: $8.5M\n🏙️ Historic Penthouse: $6.8M\n🌆 Luxury Condo: $3.2M\n\nFlexible payment plans available!",
	},
	"talk_to_agent": {
		Reply: "📞 Our sales team is ready to assist!\n\n☎️ Call: +1-555-123-4567\n💬 WhatsApp: Available 24/7\n📧 Email: sales@luxeestates.com\n⏰ Office Hours: 9 AM - 6 PM (Mon-Fri)\n\nWe respond within 24 hours!",
	},
	"master_plan": {
		Reply: "🏘️ Master Plan Features:\n\n✨ 22 Premium Amenities\n🎾 Sports Courts\n👨‍👩‍👧 Family Play Areas\n🌳 Nature Trails\n🅿️ Ample Parking\n🎭 Community Spaces\n\nVisit Projects page to view interactive master plan!",
	},
	"testimonials": {
		Reply: "⭐ What Our Clients Say:\n\n\"Exceeded all expectations!\" - Sarah M.\n\"Perfect luxury living!\" - John D.\n\"Excellent service!\" - Emma W.\n\"Best investment ever!\" - Mike P.\n\nReady to join our happy clients?",
	},
}

// LookupOption resolves an option id to its catalog entry. The second
// return is false for terminal or unknown ids.
func LookupOption(id string) (CatalogEntry, bool) {
	e, ok := catalog[id]
	return e, ok
}

// ValidateCatalog checks that every id referenced by a follow-up list or
// by the welcome sequence resolves to a catalog key or an explicit
// terminal marker. Called once at startup.
func ValidateCatalog() error {
	check := func(owner string, opts []Option) error {
		for _, o := range opts {
			if _, ok := catalog[o.ID]; ok {
				continue
			}
			if terminalOptionIDs[o.ID] {
				continue
			}
			return fmt.Errorf("chat catalog: %q references unknown option id %q", owner, o.ID)
		}
		return nil
	}

	for _, m := range WelcomeMessages(time.Time{}) {
		if err := check("welcome", m.Options); err != nil {
			return err
		}
	}
	for key, entry := range catalog {
		if err := check(key, entry.Options); err != nil {
			return err
		}
	}
	return nil
}
