package main

// Section copy shown around the portfolio data.
var (
	ProjectsIntro = `Explore my recent work and the technologies I've been working with.`

	SkillsIntro = `I've developed expertise in various technologies across the full
	stack. Here's a breakdown of my technical proficiency.`

	ContactIntro = `Have a project in mind or just want to say hello? Drop me a message.`

	ContactSent = `Thank you for your message! I'll get back to you soon.`

	ContactFailed = `Sorry, there was an error sending your message. Please try again later.`

	ContactInvalid = `Please fill in your name, a valid email address and a message.`

	ContactDisabled = `The contact form isn't connected to a mailbox yet. Please reach out through one of the links below.`

	PrivacyNotice = `Page views are counted with a salted hash of your IP address, never the address itself.
	Requests sent with "Do Not Track" are not counted at all. Counts are kept in memory and
	entries older than twelve months are removed.`
)
