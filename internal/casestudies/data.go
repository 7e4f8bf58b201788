package casestudies

// catalog is the published case-study set. It is built once and never
// mutated; readers receive copies.
var catalog = []CaseStudy{
	{
		ID:        "car-hauling-solution",
		Title:     "Dispatch & Load Management Platform for Auto Transport",
		Company:   "Interstate Auto Carriers",
		Location:  "Dallas, TX",
		Industry:  IndustryCarHauling,
		Function:  FunctionIndustrySpecific,
		Summary:   "A purpose-built dispatch hub that replaced whiteboards and group texts for a 40-truck car hauling fleet.",
		Challenge: "Dispatchers juggled load boards, phone calls and spreadsheets to match vehicles to trucks. Drivers received route changes by text and vehicle condition reports were captured on paper.",
		Solution:  "We built a central load board that pulls orders from broker emails, suggests truck assignments by route and capacity, and pushes digital bills of lading with photo inspections to the driver app.",
		Duration:  "10 weeks",
		Featured:  true,
		Technologies: []string{
			"Airtable", "Make", "Twilio", "Google Maps API", "Central Dispatch",
		},
		Results: []Result{
			{Text: "Cut dispatch time per load from 25 minutes to 6", Category: ResultTimeSavings},
			{Text: "Damage claim disputes down 60% with timestamped photo inspections", Category: ResultAccuracy},
			{Text: "Fleet grew from 40 to 55 trucks without adding dispatch staff", Category: ResultScale},
		},
		Testimonial: &Testimonial{
			Quote:  "Our dispatchers finally go home on time. The board tells them which truck fits before they even pick up the phone.",
			Author: "Marcus Bell",
			Role:   "Operations Director, Interstate Auto Carriers",
		},
		RelatedCases: []string{"carrier-driver-settlements", "freight-billing-reconciliation"},
	},
	{
		ID:        "carrier-driver-settlements",
		Title:     "Automated Driver Settlements for Owner-Operators",
		Company:   "Gulf Coast Car Carriers",
		Location:  "Houston, TX",
		Industry:  IndustryCarHauling,
		Function:  FunctionFinanceAccounting,
		Summary:   "Weekly owner-operator settlements generated from delivered loads instead of hand-built spreadsheets.",
		Challenge: "Settlements for 30 owner-operators took two people two days every week, and fuel advances were regularly missed.",
		Solution:  "Delivered loads, fuel card transactions and advances now flow into a settlement workbook that posts bills to the accounting system and emails each driver a statement.",
		Duration:  "6 weeks",
		Technologies: []string{
			"QuickBooks Online", "Zapier", "Google Sheets", "Comdata",
		},
		Results: []Result{
			{Text: "Settlement run reduced from two days to two hours", Category: ResultTimeSavings},
			{Text: "Zero missed fuel advance deductions since launch", Category: ResultAccuracy},
		},
		RelatedCases: []string{"car-hauling-solution"},
	},
	{
		ID:        "monday-integration",
		Title:     "Unified Project Tracking for a General Contractor",
		Company:   "Summit Ridge Builders",
		Location:  "Denver, CO",
		Industry:  IndustryConstruction,
		Function:  FunctionProjectManagement,
		Summary:   "One project board for office and field teams, synced with the contractor's existing job management tools.",
		Challenge: "Project managers kept separate trackers for submittals, RFIs and change orders, so superintendents never had a current picture of a job.",
		Solution:  "We connected monday.com boards to Procore and the estimating spreadsheet so RFIs, submittals and change orders update in one place and trigger Slack alerts to the right crew.",
		Duration:  "8 weeks",
		Featured:  true,
		Technologies: []string{
			"monday.com", "Procore", "Zapier", "Slack",
		},
		Results: []Result{
			{Text: "RFI response time improved by 45%", Category: ResultEfficiency},
			{Text: "Saved project managers 8 hours a week on status reporting", Category: ResultTimeSavings},
			{Text: "Change order approvals captured before work starts on every job", Category: ResultAccuracy},
		},
		Testimonial: &Testimonial{
			Quote:  "The field and the office are looking at the same board now. That alone paid for the project.",
			Author: "Dana Whitfield",
			Role:   "VP of Construction, Summit Ridge Builders",
		},
		RelatedCases: []string{"construction-bid-pipeline"},
	},
	{
		ID:        "construction-bid-pipeline",
		Title:     "Bid Pipeline and Follow-Up Automation",
		Company:   "Keystone Commercial Contracting",
		Location:  "Pittsburgh, PA",
		Industry:  IndustryConstruction,
		Function:  FunctionSalesCRM,
		Summary:   "Every invitation to bid captured, scored and followed up automatically.",
		Challenge: "Bid invitations arrived by email from a dozen platforms and estimators lost track of due dates and follow-ups.",
		Solution:  "Incoming invitations are parsed into HubSpot deals with due dates, scored for fit, and routed to estimators. Proposals go out through DocuSign and follow-ups are scheduled automatically.",
		Duration:  "5 weeks",
		Technologies: []string{
			"HubSpot", "DocuSign", "Make", "Gmail",
		},
		Results: []Result{
			{Text: "Bid win rate up from 18% to 27%", Category: ResultRevenue},
			{Text: "No missed bid deadlines in the first two quarters", Category: ResultAccuracy},
		},
		RelatedCases: []string{"monday-integration"},
	},
	{
		ID:        "stripe-invoicing",
		Title:     "Automated Invoicing & Payment Collection",
		Company:   "Brightline Consulting Group",
		Location:  "Chicago, IL",
		Industry:  IndustryProfessionalServices,
		Function:  FunctionFinanceAccounting,
		Summary:   "Retainer and hourly invoices generated from tracked time and collected online without chasing clients.",
		Challenge: "Partners exported timesheets monthly, built invoices by hand and spent days following up on late payments.",
		Solution:  "Approved time entries now generate invoices with payment links, card and ACH payments reconcile into the ledger automatically, and overdue reminders escalate on a fixed schedule.",
		Duration:  "4 weeks",
		Featured:  true,
		Technologies: []string{
			"Stripe", "QuickBooks Online", "Harvest", "Zapier",
		},
		Results: []Result{
			{Text: "Days sales outstanding dropped from 52 to 21", Category: ResultRevenue},
			{Text: "Billing close shortened from four days to one afternoon", Category: ResultTimeSavings},
			{Text: "Payment processing costs reduced 30% by shifting clients to ACH", Category: ResultCostSavings},
		},
		Testimonial: &Testimonial{
			Quote:  "We stopped being collectors. Clients pay from the invoice email and the books update themselves.",
			Author: "Priya Natarajan",
			Role:   "Managing Partner, Brightline Consulting Group",
		},
		RelatedCases: []string{"client-onboarding-portal", "freight-billing-reconciliation"},
	},
	{
		ID:        "client-onboarding-portal",
		Title:     "Self-Service Client Onboarding",
		Company:   "Harborview Advisory",
		Location:  "Boston, MA",
		Industry:  IndustryProfessionalServices,
		Function:  FunctionOperations,
		Summary:   "New clients complete intake, documents and engagement letters in one guided flow.",
		Challenge: "Onboarding a client meant a dozen emails, missing documents and an engagement letter that sat unsigned for weeks.",
		Solution:  "A guided intake form creates the client record, requests documents into a shared folder, sends the engagement letter for signature and opens the kickoff tasks for the team.",
		Duration:  "5 weeks",
		Technologies: []string{
			"Typeform", "Google Workspace", "Airtable", "PandaDoc", "Slack",
		},
		Results: []Result{
			{Text: "Onboarding time cut from three weeks to four days", Category: ResultTimeSavings},
			{Text: "Client satisfaction score for onboarding rose to 9.4 out of 10", Category: ResultCustomerExperience},
		},
		RelatedCases: []string{"stripe-invoicing"},
	},
	{
		ID:        "patient-intake-automation",
		Title:     "Patient Intake and Reminder Automation",
		Company:   "Lakeside Family Dental",
		Location:  "Madison, WI",
		Industry:  IndustryHealthcare,
		Function:  FunctionCustomerSupport,
		Summary:   "Digital intake forms and two-way appointment reminders for a three-location dental practice.",
		Challenge: "Front desk staff re-keyed paper intake forms and spent mornings calling patients to confirm appointments.",
		Solution:  "Patients receive secure intake forms before their visit, answers sync into the practice management system, and two-way SMS reminders confirm or reschedule appointments.",
		Duration:  "6 weeks",
		Technologies: []string{
			"Jotform HIPAA", "Twilio", "Dentrix", "Make",
		},
		Results: []Result{
			{Text: "No-show rate down from 14% to 5%", Category: ResultRevenue},
			{Text: "Front desk freed up 20 hours per week", Category: ResultTimeSavings},
		},
		Testimonial: &Testimonial{
			Quote:  "Patients show up with their paperwork done and our team answers the phone instead of chasing confirmations.",
			Author: "Dr. Elena Ruiz",
			Role:   "Owner, Lakeside Family Dental",
		},
	},
	{
		ID:        "shopify-order-routing",
		Title:     "Order Routing Across Three Warehouses",
		Company:   "Trailhead Outfitters",
		Location:  "Portland, OR",
		Industry:  IndustryECommerce,
		Function:  FunctionOperations,
		Summary:   "Orders routed to the closest warehouse with stock, with split shipments handled automatically.",
		Challenge: "Every order shipped from the main warehouse regardless of stock elsewhere, causing backorders and slow delivery on the East Coast.",
		Solution:  "Orders are scored against live inventory and shipping zones, routed to the best warehouse, and split when needed, with tracking pushed back to the customer.",
		Duration:  "7 weeks",
		Technologies: []string{
			"Shopify", "ShipStation", "Klaviyo", "Google Cloud Functions",
		},
		Results: []Result{
			{Text: "Average delivery time cut by 1.8 days", Category: ResultCustomerExperience},
			{Text: "Shipping spend reduced 22%", Category: ResultCostSavings},
			{Text: "Handled a 3x holiday order spike with no extra fulfillment staff", Category: ResultScale},
		},
		RelatedCases: []string{"ecommerce-support-triage"},
	},
	{
		ID:        "ecommerce-support-triage",
		Title:     "AI-Assisted Support Ticket Triage",
		Company:   "Trailhead Outfitters",
		Location:  "Portland, OR",
		Industry:  IndustryECommerce,
		Function:  FunctionCustomerSupport,
		Summary:   "Support tickets tagged, prioritized and drafted before an agent opens them.",
		Challenge: "A two-person support team faced 400 tickets a week, most of them order status questions.",
		Solution:  "Incoming tickets are classified, enriched with order and tracking data, and answered with a drafted reply that the agent approves. Order status questions resolve without an agent.",
		Duration:  "4 weeks",
		Technologies: []string{
			"Gorgias", "OpenAI API", "Shopify", "Make",
		},
		Results: []Result{
			{Text: "First response time dropped from 9 hours to 40 minutes", Category: ResultCustomerExperience},
			{Text: "45% of tickets resolved without agent involvement", Category: ResultEfficiency},
		},
		RelatedCases: []string{"shopify-order-routing"},
	},
	{
		ID:        "real-estate-lead-nurture",
		Title:     "Lead Nurture Engine for a Residential Brokerage",
		Company:   "Cornerstone Realty Partners",
		Location:  "Phoenix, AZ",
		Industry:  IndustryRealEstate,
		Function:  FunctionMarketing,
		Summary:   "Portal leads answered in under a minute and nurtured until they are ready to tour.",
		Challenge: "Leads from listing portals waited hours for a reply and most were never contacted a second time.",
		Solution:  "New leads get an instant text and email, are assigned to an agent by area, and enter drip campaigns matched to their search criteria with listing alerts.",
		Duration:  "5 weeks",
		Technologies: []string{
			"Follow Up Boss", "Mailchimp", "Zapier", "Twilio",
		},
		Results: []Result{
			{Text: "Lead response time under 60 seconds, down from 3 hours", Category: ResultCustomerExperience},
			{Text: "Appointments set per month up 38%", Category: ResultRevenue},
		},
	},
	{
		ID:        "freight-billing-reconciliation",
		Title:     "Freight Billing Reconciliation",
		Company:   "Lakeshore Freight",
		Location:  "Milwaukee, WI",
		Industry:  IndustryLogistics,
		Function:  FunctionFinanceAccounting,
		Summary:   "Carrier invoices matched against rate confirmations before anyone pays them.",
		Challenge: "Accounts payable paid carrier invoices without checking accessorials against the agreed rate, and overbilling went unnoticed.",
		Solution:  "Carrier invoices are read from the AP inbox, matched to the rate confirmation in the TMS, and only discrepancies are routed for review before bills post to the ledger.",
		Duration:  "6 weeks",
		Technologies: []string{
			"QuickBooks Online", "McLeod LoadMaster", "Python", "Google Document AI",
		},
		Results: []Result{
			{Text: "Recovered $84,000 in overbilled accessorials in the first year", Category: ResultCostSavings},
			{Text: "92% of invoices approved with no manual touch", Category: ResultEfficiency},
		},
		RelatedCases: []string{"carrier-driver-settlements"},
	},
	{
		ID:        "loan-document-collection",
		Title:     "Loan Document Collection Workflow",
		Company:   "Prairie State Lending",
		Location:  "Omaha, NE",
		Industry:  IndustryFinancialServices,
		Function:  FunctionOperations,
		Summary:   "Borrower document requests, reminders and checklists managed automatically from application to closing.",
		Challenge: "Loan processors tracked outstanding borrower documents in spreadsheets and sent reminders by hand.",
		Solution:  "Each application generates a document checklist, borrowers upload into a secure folder, files are classified on arrival, and reminders go out until the checklist is complete.",
		Duration:  "8 weeks",
		Technologies: []string{
			"Box", "DocuSign", "Make", "Encompass",
		},
		Results: []Result{
			{Text: "Time from application to clear-to-close reduced by 9 days", Category: ResultTimeSavings},
			{Text: "Each processor now handles 30% more files", Category: ResultScale},
		},
		Testimonial: &Testimonial{
			Quote:  "Processors spend their day underwriting instead of asking for bank statements.",
			Author: "Tom Reeves",
			Role:   "COO, Prairie State Lending",
		},
		RelatedCases: []string{"client-onboarding-portal"},
	},
}
