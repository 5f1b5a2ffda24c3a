package faq

var entries = []Item{
	{
		ID:       "1",
		Category: "Registration Process",
		Question: "What is Udyam Registration?",
		Answer:   "Udyam Registration is a government registration process for Micro, Small, and Medium Enterprises (MSMEs) in India. It was introduced by the Ministry of MSME to replace the earlier system of filing Entrepreneurs Memorandum (EM-I & EM-II) and obtaining acknowledgement and Udyog Aadhaar Registration.",
	},
	{
		ID:       "2",
		Category: "Registration Process",
		Question: "Who can apply for Udyam Registration?",
		Answer:   "Any Micro, Small and Medium Enterprise engaged in the production or manufacture of goods pertaining to any industry specified in the first schedule to the Industries Development and Regulation Act, 1951 or engaged in providing or rendering of services can apply for Udyam Registration.",
	},
	{
		ID:       "3",
		Category: "Registration Process",
		Question: "What documents are required for Udyam Registration?",
		Answer:   "The following documents are required: 1) Aadhaar Card of the entrepreneur/authorized signatory, 2) PAN of the enterprise, 3) Mobile number linked to Aadhaar, 4) Email ID, 5) GSTIN (if applicable), 6) Bank details, 7) Enterprise details like address, commencement date, etc.",
	},
	{
		ID:       "4",
		Category: "Registration Process",
		Question: "Is there any fee for Udyam Registration?",
		Answer:   "No, Udyam Registration is completely free of cost. The Government of India has made this registration process free to encourage small businesses to register and avail benefits.",
	},
	{
		ID:       "5",
		Category: "Registration Process",
		Question: "How long does it take to get Udyam Registration?",
		Answer:   "Udyam Registration is issued instantly after successful submission of the application with all required details and verification of Aadhaar and PAN.",
	},
	{
		ID:       "6",
		Category: "Technical Issues",
		Question: "I am not receiving OTP on my mobile. What should I do?",
		Answer:   "Please ensure that: 1) Your mobile number is linked to your Aadhaar card, 2) Your mobile network is working properly, 3) You have not blocked promotional SMS, 4) Wait for 2-3 minutes as sometimes there might be a delay. If the issue persists, try using the \"Resend OTP\" option.",
	},
	{
		ID:       "7",
		Category: "Technical Issues",
		Question: "My PAN details are not matching. What should I do?",
		Answer:   "Please ensure that you enter the PAN number exactly as it appears on your PAN card. The name of the enterprise should also match the name mentioned in the PAN card. If there are still issues, please verify your PAN details with the Income Tax Department.",
	},
	{
		ID:       "8",
		Category: "Technical Issues",
		Question: "What should I do if my Aadhaar is not linked to my mobile number?",
		Answer:   "You need to link your mobile number to Aadhaar first. You can do this by visiting the nearest Aadhaar center or by calling the Aadhaar helpline at 1947. Once linked, wait for 24-48 hours before attempting registration.",
	},
	{
		ID:       "9",
		Category: "After Registration",
		Question: "What are the benefits of Udyam Registration?",
		Answer:   "Benefits include: 1) Priority in government tenders, 2) Easy access to credit and loans, 3) Subsidy benefits for various schemes, 4) Protection against delayed payments, 5) Technology upgradation support, 6) Marketing assistance, 7) Access to various government schemes.",
	},
	{
		ID:       "10",
		Category: "After Registration",
		Question: "How can I download my Udyam Certificate?",
		Answer:   "You can download your Udyam Certificate by visiting the \"Check Registration Status\" page and entering your Udyam Registration Number, PAN, or registered mobile number. Once verified, you can download and print your certificate.",
	},
	{
		ID:       "11",
		Category: "After Registration",
		Question: "Can I update my information after registration?",
		Answer:   "Yes, you can update certain information like address, bank details, and activity details. However, core information like Aadhaar number and PAN cannot be changed. For updates, you need to log in with your Udyam Registration Number.",
	},
	{
		ID:       "12",
		Category: "After Registration",
		Question: "What is the validity of Udyam Registration?",
		Answer:   "Udyam Registration is valid for a lifetime unless the enterprise ceases to exist or the registration is cancelled for non-compliance. However, enterprises need to file Annual Returns to keep the registration active.",
	},
	{
		ID:       "13",
		Category: "General",
		Question: "What is the difference between Micro, Small, and Medium Enterprises?",
		Answer:   "Classification based on investment and turnover: Micro - Investment up to ₹1 crore and turnover up to ₹5 crore; Small - Investment up to ₹10 crore and turnover up to ₹50 crore; Medium - Investment up to ₹50 crore and turnover up to ₹250 crore.",
	},
	{
		ID:       "14",
		Category: "General",
		Question: "Can I register multiple enterprises with the same Aadhaar?",
		Answer:   "Yes, you can register multiple enterprises using the same Aadhaar number. Each enterprise will get a separate Udyam Registration Number. However, the person registering should be the owner/partner/director of all the enterprises.",
	},
	{
		ID:       "15",
		Category: "Support",
		Question: "What should I do if I face any issues during registration?",
		Answer:   "If you face any technical issues, you can: 1) Contact the helpline at 1800-180-6763, 2) Email at helpdesk-udyam@gov.in, 3) Visit the nearest MSME Development Institute, 4) Use the grievance redressal system on the portal.",
	},
}
