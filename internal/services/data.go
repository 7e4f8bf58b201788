package services

var catalog = []Offering{
	{
		ID:          "workflow-automation",
		Title:       "Workflow Automation",
		Tagline:     "Stop copying data between tools.",
		Description: "We map the repetitive work that eats your team's week and connect the tools you already pay for so it runs on its own.",
		Icon:        "workflow",
		Details: Details{
			Benefits: []Benefit{
				{Title: "Hours back every week", Description: "Manual data entry, status updates and handoffs happen automatically."},
				{Title: "Fewer mistakes", Description: "Data is entered once and flows everywhere it is needed."},
				{Title: "Room to grow", Description: "Volume can double without adding headcount to keep up."},
			},
			Features: []string{
				"Process mapping workshop",
				"Integrations across CRM, accounting and project tools",
				"Error alerts and run history",
				"Documentation and team training",
			},
			Process: []ProcessStep{
				{Step: 1, Title: "Discover", Description: "We interview the people doing the work and map every step."},
				{Step: 2, Title: "Design", Description: "We propose the automated flow and agree on what stays manual."},
				{Step: 3, Title: "Build", Description: "We build and test against real data in a sandbox."},
				{Step: 4, Title: "Launch & support", Description: "We roll out, monitor the first weeks and hand over documentation."},
			},
			FAQs: []FAQ{
				{Question: "Do we need to replace our current software?", Answer: "Rarely. Most projects connect the tools you already use."},
				{Question: "How long does a typical project take?", Answer: "Four to ten weeks depending on the number of systems involved."},
			},
		},
		CaseStudies: []string{"client-onboarding-portal", "loan-document-collection", "shopify-order-routing"},
	},
	{
		ID:          "crm-integration",
		Title:       "CRM & Sales Automation",
		Tagline:     "Every lead followed up, every time.",
		Description: "We set up and connect your CRM so leads are captured, routed and nurtured without anyone chasing spreadsheets.",
		Icon:        "users",
		Details: Details{
			Benefits: []Benefit{
				{Title: "Faster response", Description: "New leads receive a reply in seconds, not hours."},
				{Title: "Clear pipeline", Description: "Everyone sees the same deals, stages and next steps."},
			},
			Features: []string{
				"Lead capture from web forms, portals and email",
				"Assignment rules and round-robin routing",
				"Drip campaigns and follow-up sequences",
				"Pipeline dashboards",
			},
			Process: []ProcessStep{
				{Step: 1, Title: "Audit", Description: "We review where leads come from and where they get stuck."},
				{Step: 2, Title: "Configure", Description: "We set up pipelines, fields and automation rules."},
				{Step: 3, Title: "Migrate", Description: "We import and clean existing contacts and deals."},
				{Step: 4, Title: "Train", Description: "We train the sales team and tune the rules after launch."},
			},
			FAQs: []FAQ{
				{Question: "Which CRMs do you work with?", Answer: "HubSpot, Salesforce, Pipedrive, Follow Up Boss and others."},
				{Question: "Can you migrate our existing data?", Answer: "Yes. Migration and deduplication are part of every CRM project."},
			},
		},
		CaseStudies: []string{"construction-bid-pipeline", "real-estate-lead-nurture"},
	},
	{
		ID:          "finance-automation",
		Title:       "Finance & Accounting Automation",
		Tagline:     "Close the books without the late nights.",
		Description: "Invoicing, payment collection, reconciliation and settlements connected end to end with your accounting system.",
		Icon:        "calculator",
		Details: Details{
			Benefits: []Benefit{
				{Title: "Get paid sooner", Description: "Invoices go out on time with online payment built in."},
				{Title: "Clean books", Description: "Transactions reconcile automatically so month-end is a review, not a project."},
			},
			Features: []string{
				"Automated invoicing from time or orders",
				"Online card and ACH collection",
				"Bank and carrier invoice reconciliation",
				"Payment reminders and escalation",
			},
			Process: []ProcessStep{
				{Step: 1, Title: "Review", Description: "We walk through your billing and close process with your bookkeeper."},
				{Step: 2, Title: "Automate", Description: "We connect billing, payments and the ledger."},
				{Step: 3, Title: "Verify", Description: "We run in parallel with your existing process for one cycle."},
			},
			FAQs: []FAQ{
				{Question: "Will our accountant still have control?", Answer: "Yes. Anything unusual is routed for review before it posts."},
			},
		},
		CaseStudies: []string{"stripe-invoicing", "carrier-driver-settlements", "freight-billing-reconciliation"},
	},
	{
		ID:          "ai-customer-support",
		Title:       "AI-Assisted Customer Support",
		Tagline:     "Answer faster without hiring faster.",
		Description: "Tickets and messages classified, enriched and drafted before an agent opens them, with routine questions answered automatically.",
		Icon:        "message-circle",
		Details: Details{
			Benefits: []Benefit{
				{Title: "Faster first response", Description: "Customers hear back in minutes."},
				{Title: "Focused agents", Description: "Your team spends time on the conversations that need a person."},
			},
			Features: []string{
				"Ticket classification and prioritization",
				"Drafted replies with order and account context",
				"Two-way SMS and email reminders",
				"Escalation rules and reporting",
			},
			Process: []ProcessStep{
				{Step: 1, Title: "Analyze", Description: "We sample past tickets to find what can be automated safely."},
				{Step: 2, Title: "Build", Description: "We connect your help desk to order and customer data."},
				{Step: 3, Title: "Tune", Description: "Agents review drafts while we tune accuracy before anything is sent automatically."},
			},
			FAQs: []FAQ{
				{Question: "Will customers talk to a bot?", Answer: "Only for simple status questions. Everything else is drafted for an agent to approve."},
				{Question: "Is patient or customer data safe?", Answer: "We use vendors that sign the agreements your industry requires, including HIPAA BAAs."},
			},
		},
		CaseStudies: []string{"ecommerce-support-triage", "patient-intake-automation"},
	},
	{
		ID:          "industry-solutions",
		Title:       "Industry-Specific Platforms",
		Tagline:     "Software shaped around how your business actually runs.",
		Description: "When off-the-shelf tools do not fit, we build focused platforms for dispatch, project tracking and field operations.",
		Icon:        "truck",
		Details: Details{
			Benefits: []Benefit{
				{Title: "Fits your operation", Description: "Built around your terminology, your steps and your edge cases."},
				{Title: "One source of truth", Description: "Office and field teams work from the same live data."},
			},
			Features: []string{
				"Dispatch and load boards",
				"Mobile inspections with photos",
				"Project and job tracking",
				"Integrations with industry systems",
			},
			Process: []ProcessStep{
				{Step: 1, Title: "Shadow", Description: "We spend time with dispatchers, project managers and crews."},
				{Step: 2, Title: "Prototype", Description: "We build a working prototype on real jobs within weeks."},
				{Step: 3, Title: "Roll out", Description: "We expand team by team and train as we go."},
				{Step: 4, Title: "Evolve", Description: "We keep improving the platform as your operation changes."},
			},
			FAQs: []FAQ{
				{Question: "Do you only work with car haulers and contractors?", Answer: "No. Those are where we started, and the same approach works for any field-heavy operation."},
			},
		},
		CaseStudies: []string{"car-hauling-solution", "monday-integration"},
	},
}
