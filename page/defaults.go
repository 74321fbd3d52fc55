package page

// Built-in page content. Every page shares the navbar and footer below;
// adding a page means adding an entry to Defaults.

const (
	HelpCenterID    = "help-center"
	PrivacyPolicyID = "privacy-policy"
	TrustSafetyID   = "trust-safety"
)

func siteNavbar() Navbar {
	return Navbar{
		Brand: "Wayfarer",
		Logo:  Image{Src: "wayfarer-logo.png", Alt: "Wayfarer"},
		Links: []Link{
			{Label: "Stays", Target: "stays"},
			{Label: "Flights", Target: "flights"},
			{Label: "Experiences", Target: "experiences"},
			{Label: "Help", Href: "/" + HelpCenterID},
		},
		Actions: []Link{
			{Label: "Sign up", Target: "sign-up"},
			{Label: "Log in", Target: "log-in"},
		},
	}
}

func siteFooter() Footer {
	return Footer{
		Groups: []LinkGroup{
			{
				Title: "Company",
				Links: []Link{
					{Label: "About us", Target: "about"},
					{Label: "Careers", Target: "careers"},
					{Label: "Press", Target: "press"},
				},
			},
			{
				Title: "Support",
				Links: []Link{
					{Label: "Help Center", Href: "/" + HelpCenterID},
					{Label: "Trust & Safety", Href: "/" + TrustSafetyID},
					{Label: "Contact us", Target: "contact"},
				},
			},
			{
				Title: "Legal",
				Links: []Link{
					{Label: "Privacy Policy", Href: "/" + PrivacyPolicyID},
					{Label: "Terms of Service", Target: "terms"},
				},
			},
		},
		Copyright: "© 2024 Wayfarer, Inc. All rights reserved.",
	}
}

// Defaults returns the built-in page schema.
func Defaults() []Page {
	return []Page{
		helpCenter(),
		privacyPolicy(),
		trustSafety(),
	}
}

// DefaultRegistry returns a registry holding the built-in pages.
func DefaultRegistry() *Registry {
	return NewRegistry(Defaults()...)
}

func helpCenter() Page {
	return Page{
		ID:          HelpCenterID,
		Title:       "Help Center",
		Description: "Answers to common questions about booking, payments and your Wayfarer account.",
		Sections: []Section{
			siteNavbar(),
			Hero{
				Title:             "How can we help?",
				Tagline:           "Search our help articles or browse the most common questions below.",
				Image:             Image{Src: "help-center-hero.jpg", Alt: "Traveller looking at a map"},
				SearchPlaceholder: "Search for answers",
			},
			FaqList{
				Heading: "Frequently asked questions",
				Items: []FaqItem{
					{
						Question: "How do I change or cancel a booking?",
						Answer:   "Open Trips, choose the booking and select Change or Cancel. The options available depend on the cancellation policy shown when you booked.",
					},
					{
						Question: "When will I be charged?",
						Answer:   "Most stays are charged when the host confirms your request. Some properties let you pay at check-in; this is shown on the listing before you book.",
					},
					{
						Question: "How do refunds work?",
						Answer:   "Refunds go back to the original payment method. Card refunds usually appear within 5 to 10 business days depending on your bank.",
					},
					{
						Question: "Can I book for someone else?",
						Answer:   "Yes. Add the guest's name during checkout so the host knows who to expect.",
					},
					{
						Question: "How do I contact my host?",
						Answer:   "Use the Messages tab once your booking is confirmed. Phone numbers are shared 48 hours before check-in.",
					},
				},
			},
			ContactList{
				Heading: "Still need help?",
				Entries: []ContactEntry{
					{Label: "Technical Support", Value: "+123 456 7890"},
					{Label: "Customer Service", Value: "+1 800 555 0199"},
					{Label: "Email", Value: "support@wayfarer.travel"},
				},
			},
			siteFooter(),
		},
	}
}

func privacyPolicy() Page {
	return Page{
		ID:          PrivacyPolicyID,
		Title:       "Privacy Policy",
		Description: "How Wayfarer collects, uses and protects your personal information.",
		Sections: []Section{
			siteNavbar(),
			Hero{
				Title:   "Privacy Policy",
				Tagline: "Last updated: March 2024",
				Image:   Image{Src: "privacy-hero.jpg", Alt: "Padlock on a suitcase"},
			},
			TextBlock{
				Heading: "Information we collect",
				Body: "We collect the details you give us when you create an account or make a booking:\n\n" +
					"- your name, e-mail address and phone number\n" +
					"- payment details, handled by our payment partners\n" +
					"- traveller details required by hosts and airlines\n\n" +
					"We also collect device and usage information when you browse Wayfarer.",
			},
			TextBlock{
				Heading: "How we use your information",
				Body: "We use your information to complete bookings, provide customer support, " +
					"prevent fraud and improve our services. We only send marketing messages if you opt in.",
			},
			TextBlock{
				Heading: "Sharing with hosts and partners",
				Body: "When you book, we share the details a host or airline needs to honour your reservation. " +
					"We never sell your personal information.",
			},
			TextBlock{
				Heading: "Your rights",
				Body: "You can access, correct or delete your personal information from your account settings " +
					"at any time. Some records are kept where the law requires it.",
			},
			TextBlock{
				Heading: "Cookies",
				Body: "We use cookies to keep you signed in, remember your preferences and understand how the site is used. " +
					"You can manage cookies in your browser settings.",
			},
			ContactList{
				Heading: "Questions about privacy?",
				Entries: []ContactEntry{
					{Label: "Privacy Office", Value: "privacy@wayfarer.travel"},
					{Label: "Data Protection Officer", Value: "dpo@wayfarer.travel"},
				},
			},
			siteFooter(),
		},
	}
}

func trustSafety() Page {
	return Page{
		ID:          TrustSafetyID,
		Title:       "Trust & Safety",
		Description: "What Wayfarer does to keep guests and hosts safe before, during and after every trip.",
		Sections: []Section{
			siteNavbar(),
			Hero{
				Title:   "Your safety is our priority",
				Tagline: "From verified listings to round-the-clock support, we work to make every trip a safe one.",
				Image:   Image{Src: "trust-safety-hero.jpg", Alt: "Family arriving at a holiday home"},
			},
			TextBlock{
				Heading: "Verified listings",
				Body:    "Every listing is reviewed before it goes live. Hosts verify their identity and address, and we remove listings that don't meet our standards.",
				Image:   Image{Src: "trust-verified.png", Alt: "Verified badge"},
			},
			TextBlock{
				Heading: "Secure payments",
				Body:    "Always pay through Wayfarer. We hold your payment until 24 hours after check-in, so your money is protected if something goes wrong.",
				Image:   Image{Src: "trust-payments.png", Alt: "Credit card with a shield"},
			},
			TextBlock{
				Heading: "Support around the clock",
				Body:    "Our safety team is available 24/7 in over 40 languages. If you ever feel unsafe, contact local emergency services first, then let us know.",
				Image:   Image{Src: "trust-support.png", Alt: "Support agent with a headset"},
			},
			FaqList{
				Heading: "Safety questions",
				Items: []FaqItem{
					{
						Question: "How do I report a listing?",
						Answer:   "Select Report this listing at the bottom of any listing page, or contact the safety team directly.",
					},
					{
						Question: "What happens if my stay isn't as described?",
						Answer:   "Tell us within 24 hours of check-in. We'll help you find a similar place or refund you.",
					},
					{
						Question: "Does Wayfarer run background checks?",
						Answer:   "Hosts and guests are screened against regulatory and sanctions lists where the law allows.",
					},
				},
			},
			ContactList{
				Heading: "Contact the safety team",
				Entries: []ContactEntry{
					{Label: "24/7 Safety Line", Value: "+1 800 555 0142"},
					{Label: "Email", Value: "safety@wayfarer.travel"},
				},
			},
			siteFooter(),
		},
	}
}
