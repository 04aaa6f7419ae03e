package faq

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seed loads the starter FAQ corpus on first boot. It is a no-op once any
// FAQ exists, so operator-created entries are never mixed with re-seeds.
func Seed(ctx context.Context, repo *Repo) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, e := range seedFAQs {
		f := &FAQ{
			ID:       uuid.New().String(),
			Question: e.Question,
			Answer:   e.Answer,
			Category: e.Category,
			Keywords: e.Keywords,
		}
		if err := repo.Create(ctx, f); err != nil {
			return err
		}
	}
	zap.L().Info("seeded faq corpus", zap.Int("count", len(seedFAQs)))
	return nil
}

type seedEntry struct {
	Question string
	Answer   string
	Category string
	Keywords []string
}

var seedFAQs = []seedEntry{
	{
		Question: "How do I reset my password?",
		Answer:   "To reset your password: 1) Click 'Forgot Password' on the login page, 2) Enter your registered email address, 3) Check your email for a reset link (check spam folder if needed), 4) Click the link and create a new strong password (minimum 8 characters, include letters, numbers, and symbols), 5) Log in with your new password. The reset link expires in 24 hours. If you don't receive the email, contact support.",
		Category: "Account Management",
		Keywords: []string{"password", "reset", "forgot", "login", "access", "credential"},
	},
	{
		Question: "How do I change my email address?",
		Answer:   "To change your email: 1) Log into your account, 2) Go to 'Account Settings' > 'Profile', 3) Click 'Edit' next to your email, 4) Enter your new email and current password for verification, 5) Verify the new email by clicking the link we send. Your old email will remain active for 7 days. All future communications will go to your new email.",
		Category: "Account Management",
		Keywords: []string{"email", "change", "update", "modify", "account", "address"},
	},
	{
		Question: "How do I delete my account?",
		Answer:   "To permanently delete your account: 1) Go to 'Account Settings' > 'Privacy & Security', 2) Scroll to 'Delete Account', 3) Click 'Request Deletion', 4) Confirm by entering your password, 5) You'll receive an email confirmation. Account deletion takes 30 days (cooling-off period). All your data, orders, and subscriptions will be permanently removed. This action cannot be undone. You can cancel deletion within 30 days by contacting support.",
		Category: "Account Management",
		Keywords: []string{"delete", "account", "remove", "close", "cancel", "deactivate", "terminate"},
	},
	{
		Question: "How do I enable two-factor authentication?",
		Answer:   "To enable 2FA for added security: 1) Go to 'Account Settings' > 'Security', 2) Click 'Enable Two-Factor Authentication', 3) Choose your method (SMS, Authenticator App, or Email), 4) Follow the setup instructions, 5) Save your backup codes in a safe place. Once enabled, you'll need your password and 2FA code to log in. We recommend using an authenticator app like Google Authenticator or Authy for the best security.",
		Category: "Account Management",
		Keywords: []string{"two factor", "2fa", "authentication", "security", "verification", "mfa"},
	},
	{
		Question: "What payment methods do you accept?",
		Answer:   "We accept: Credit/Debit Cards (Visa, Mastercard, American Express, Discover), PayPal, Apple Pay, Google Pay, Bank Transfers (ACH for US customers), and Cryptocurrency (Bitcoin, Ethereum for annual plans). All payments are processed securely through Stripe. We don't store your full card details. For enterprise accounts, we also offer invoice-based billing with Net-30 terms.",
		Category: "Billing & Payments",
		Keywords: []string{"payment", "method", "accept", "credit card", "paypal", "visa", "mastercard"},
	},
	{
		Question: "What is your refund policy?",
		Answer:   "Our refund policy: 30-day money-back guarantee for all new subscriptions (no questions asked). Refunds for monthly plans are prorated from the request date. Annual plan refunds are prorated for unused months (minus a 10% processing fee). To request a refund: 1) Go to 'Billing' > 'Request Refund', 2) Select the reason, 3) Submit. Refunds process within 5-7 business days to your original payment method. After 30 days, only prorated refunds are available for service issues.",
		Category: "Billing & Payments",
		Keywords: []string{"refund", "return", "money back", "cancel", "payment", "guarantee"},
	},
	{
		Question: "Why is my payment failing?",
		Answer:   "Common payment failure reasons: 1) Insufficient funds - Check your account balance, 2) Incorrect card details - Verify card number, expiry, and CVV, 3) Billing address mismatch - Ensure address matches your bank records, 4) Card expired - Update with a new card, 5) International transactions blocked - Contact your bank to allow international charges, 6) Daily limit exceeded - Wait 24 hours or contact your bank. Try a different payment method or contact support if issues persist.",
		Category: "Billing & Payments",
		Keywords: []string{"payment", "failed", "declined", "error", "card", "transaction", "issue"},
	},
	{
		Question: "How do I cancel my subscription?",
		Answer:   "To cancel your subscription: 1) Go to 'Account Settings' > 'Subscription', 2) Click 'Cancel Subscription', 3) Select cancellation reason (helps us improve), 4) Choose: Cancel immediately (lose access now, no refund) OR Cancel at period end (access until current billing cycle ends), 5) Confirm. You can reactivate anytime before the period ends. Your data is retained for 90 days after cancellation. No cancellation fees apply.",
		Category: "Billing & Payments",
		Keywords: []string{"cancel", "subscription", "stop", "terminate", "end", "quit"},
	},
	{
		Question: "How do I track my order?",
		Answer:   "To track your order: 1) Log into your account, 2) Go to 'My Orders', 3) Click on your order number, 4) View real-time tracking information. You'll also receive tracking emails at: Order confirmation, Shipped (with tracking number), Out for delivery, Delivered. Click the tracking number to see detailed updates on our carrier's website. If tracking hasn't updated in 48 hours, contact support. Orders typically ship within 1-2 business days.",
		Category: "Shipping & Delivery",
		Keywords: []string{"track", "order", "shipping", "delivery", "package", "status", "where"},
	},
	{
		Question: "What should I do if I receive a damaged product?",
		Answer:   "If you receive damaged items: 1) Don't throw away packaging, 2) Take clear photos of: Damaged item, Product packaging, Shipping box, Shipping label, 3) Contact us within 48 hours via 'Support' > 'Report Damaged Item', 4) Upload photos and order number, 5) We'll immediately send a replacement (free shipping) OR issue a full refund (your choice). No need to return the damaged item. We'll handle the carrier claim. If you notice damage upon delivery, refuse the package or note damage on delivery receipt.",
		Category: "Shipping & Delivery",
		Keywords: []string{"damaged", "broken", "defective", "product", "issue", "received", "wrong"},
	},
	{
		Question: "Why is the app slow or not loading?",
		Answer:   "Troubleshooting slow performance: 1) Check your internet connection (minimum 1 Mbps required), 2) Clear browser cache and cookies: Settings > Privacy > Clear Data, 3) Disable browser extensions temporarily, 4) Try incognito/private mode, 5) Check if browser is updated, 6) Restart browser, 7) Try different browser. If still slow: Check our status page at status.company.com, Large files may take time to process, Peak usage times (9 AM - 5 PM) may affect speed. Contact support if issues persist beyond 30 minutes.",
		Category: "Technical Issues",
		Keywords: []string{"slow", "loading", "not working", "performance", "lag", "stuck", "frozen"},
	},
	{
		Question: "How do I download my data?",
		Answer:   "To export your data: 1) Go to 'Account Settings' > 'Data & Privacy', 2) Click 'Export My Data', 3) Select what to export: All data OR Specific categories (messages, files, contacts, etc.), 4) Choose format: JSON (machine readable) OR CSV (spreadsheet compatible), 5) Click 'Request Export'. You'll receive an email with download link (usually within 24 hours). Download expires after 7 days. Re-export anytime. Exports include all your data per GDPR rights. Enterprise: Bulk API available.",
		Category: "Technical Issues",
		Keywords: []string{"download", "export", "data", "backup", "save", "extract"},
	},
	{
		Question: "What are your customer support hours?",
		Answer:   "Support availability: Chat & Email: 24/7 (AI-powered instant responses + human support), Phone support: Monday-Friday, 9 AM - 6 PM EST, Emergency support (Enterprise): 24/7/365, Response times: Free plans: 24-48 hours, Paid plans: 4-8 hours, Enterprise: 1-hour SLA. Holiday closures: We monitor critical issues 24/7 even on holidays. After-hours: Submit tickets anytime, we respond when online. For urgent issues, mark as 'Priority'. Multilingual support: English, Spanish, French, German. Live chat available on website and in-app.",
		Category: "General",
		Keywords: []string{"hours", "time", "available", "support", "contact", "when", "customer service"},
	},
	{
		Question: "How do I contact customer support?",
		Answer:   "Contact methods: Live Chat: Click chat icon (bottom right) or this conversation, Email: support@company.com (attach screenshots for faster help), Phone: 1-800-123-4567 (Mon-Fri, 9 AM - 6 PM EST), Help Center: help.company.com (search 500+ articles), Social Media: @company on Twitter, Facebook (public issues only), Enterprise: Dedicated Slack channel + phone hotline. Before contacting: Check Help Center for instant answers, Have your account email ready, Include error messages/screenshots, Describe steps to reproduce issue. Average response time: Chat: Under 2 minutes, Email: 4-8 hours.",
		Category: "General",
		Keywords: []string{"contact", "support", "help", "email", "phone", "reach", "talk"},
	},
	{
		Question: "How do I report a bug or technical issue?",
		Answer:   "To report bugs effectively: 1) Go to 'Help' > 'Report a Bug', 2) Provide details: What you were trying to do, What happened vs. what you expected, Steps to reproduce the issue, Browser/device information (auto-collected), 3) Attach: Screenshots (drag & drop), Screen recording (if applicable), Error messages, 4) Select severity: Critical (can't work), Major (workaround needed), Minor (cosmetic). We'll: Acknowledge within 1 hour, Provide status updates, Notify when fixed.",
		Category: "General",
		Keywords: []string{"bug", "issue", "problem", "error", "report", "broken", "not working"},
	},
}
