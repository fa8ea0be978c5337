package profile

import "github.com/awoplatform/mdxgen/internal/docpath"

// minimalProfile is the short page list with one generic template per area.
func minimalProfile() *Profile {
	return &Profile{
		Name:        "minimal",
		Description: "API, guide, SDK and resource stubs with minimal boilerplate",
		Paths: []docpath.Entry{
			"api-reference/chamas/details",
			"api-reference/chamas/contribute",
			"api-reference/chamas/members",
			"api-reference/savings/create-goal",
			"api-reference/savings/update-goal",
			"api-reference/savings/progress",
			"api-reference/payments/initiate",
			"api-reference/payments/status",
			"api-reference/payments/history",
			"api-reference/webhooks/overview",
			"api-reference/webhooks/events",
			"api-reference/webhooks/verification",
			"guides/chama-management",
			"guides/bank-integration",
			"guides/payment-processing",
			"guides/mobile-app-setup",
			"guides/web-app-setup",
			"guides/testing-strategies",
			"guides/deployment",
			"guides/monitoring",
			"guides/troubleshooting",
			"guides/best-practices",
			"sdks/overview",
			"sdks/javascript/installation",
			"sdks/javascript/quickstart",
			"sdks/javascript/api-reference",
			"sdks/react-native/installation",
			"sdks/react-native/quickstart",
			"sdks/react-native/components",
			"sdks/python/installation",
			"sdks/python/quickstart",
			"sdks/python/api-reference",
			"resources/examples",
			"resources/postman-collection",
			"resources/openapi-spec",
			"resources/status-codes",
			"resources/rate-limits",
			"resources/webhooks-reference",
			"resources/glossary",
			"resources/changelog",
		},
		Sections: map[string]Category{
			"api-reference": "api",
			"guides":        "guide",
			"sdks":          "sdk",
			"resources":     "resource",
		},
		Fallback: "guide",
		NextSteps: []string{
			"Run: mintlify dev",
			"Replace placeholder content with actual documentation",
			"Test your documentation build",
		},
	}
}

// completeProfile is the full platform page list with section-specific templates.
func completeProfile() *Profile {
	return &Profile{
		Name:        "complete",
		Description: "Every platform documentation page with section-specific templates",
		Paths: []docpath.Entry{
			// Getting Started
			"platform-overview",
			"target-users",
			"key-features",
			"market-context",

			// Quick Setup
			"quick-setup/development-environment",
			"quick-setup/api-setup",
			"quick-setup/mobile-app-setup",
			"quick-setup/database-configuration",
			"quick-setup/first-integration",

			// Architecture
			"architecture/system-overview",
			"architecture/technology-stack",
			"architecture/component-architecture",
			"architecture/data-flow",
			"architecture/security-architecture",
			"architecture/scalability-design",
			"architecture/technical-decisions",

			// Data Models
			"data-models/database-schema",
			"data-models/user-models",
			"data-models/financial-models",
			"data-models/chama-models",
			"data-models/investment-models",
			"data-models/compliance-models",
			"data-models/relationships",

			// Core Features
			"core-features/authentication",
			"core-features/user-management",
			"core-features/awo-wallet",
			"core-features/diva-scoring",
			"core-features/rtsm-assessment",
			"core-features/basic-chama",
			"core-features/mobile-money",
			"core-features/transaction-history",

			// Advanced Features
			"advanced-features/investment-platform",
			"advanced-features/sme-marketplace",
			"advanced-features/portfolio-management",
			"advanced-features/advanced-chama",
			"advanced-features/wealth-coaching",
			"advanced-features/youth-accounts",
			"advanced-features/cross-border-payments",
			"advanced-features/ussd-banking",
			"advanced-features/whatsapp-banking",
			"advanced-features/agent-networks",

			// Development
			"development/environment-setup",
			"development/project-structure",
			"development/development-workflow",
			"development/code-style",
			"development/component-patterns",
			"development/state-management",
			"development/real-time-features",
			"development/performance-optimization",
			"development/debugging",

			// Testing
			"testing/testing-strategy",
			"testing/unit-testing",
			"testing/integration-testing",
			"testing/e2e-testing",
			"testing/financial-testing",
			"testing/performance-testing",
			"testing/mobile-testing",
			"testing/compliance-testing",

			// API Reference - Auth
			"api-reference/auth/mfa",
			"api-reference/auth/logout",

			// API Reference - Users
			"api-reference/users/preferences",
			"api-reference/users/contacts",
			"api-reference/users/devices",

			// API Reference - Financial
			"api-reference/financial/balance-inquiries",
			"api-reference/financial/transaction-sync",

			// API Reference - DIVA Score
			"api-reference/diva-score/rtsm-assessment",

			// API Reference - Chamas
			"api-reference/chamas/governance",
			"api-reference/chamas/reporting",

			// API Reference - Savings
			"api-reference/savings/auto-savings",

			// API Reference - Investments
			"api-reference/investments/sme-marketplace",
			"api-reference/investments/performance",

			// API Reference - Payments
			"api-reference/payments/mobile-money",
			"api-reference/payments/cross-border",

			// API Reference - Coaching
			"api-reference/coaching/coach-discovery",
			"api-reference/coaching/session-management",
			"api-reference/coaching/content-library",
			"api-reference/coaching/progress-tracking",

			// API Reference - Notifications
			"api-reference/notifications/push-notifications",
			"api-reference/notifications/sms-email",
			"api-reference/notifications/real-time-updates",
			"api-reference/notifications/preferences",

			// API Reference - Webhooks
			"api-reference/webhooks/payment-events",
			"api-reference/webhooks/score-events",

			// Integration Guides
			"integration/open-banking",
			"integration/stitch-integration",
			"integration/mono-integration",
			"integration/flutterwave-setup",
			"integration/mobile-money",
			"integration/kyc-integration",
			"integration/sms-email-setup",
			"integration/push-notifications",
			"integration/whatsapp-banking",

			// Security
			"security/overview",
			"security/authentication-security",
			"security/data-security",
			"security/api-security",
			"security/financial-security",
			"security/threat-model",
			"security/incident-response",

			// Security Best Practices
			"security-practices/development-guidelines",
			"security-practices/infrastructure-security",
			"security-practices/operational-security",
			"security-practices/code-review",
			"security-practices/compliance-practices",

			// Deployment
			"deployment/overview",
			"deployment/environment-setup",
			"deployment/backend-deployment",
			"deployment/mobile-deployment",
			"deployment/database-deployment",
			"deployment/monitoring-setup",

			// Infrastructure
			"infrastructure/overview",
			"infrastructure/database-infrastructure",
			"infrastructure/application-infrastructure",
			"infrastructure/devops-cicd",
			"infrastructure/security-infrastructure",
			"infrastructure/monitoring-logging",

			// Guides
			"guides/portfolio-setup",
			"guides/wealth-coaching-setup",
			"guides/youth-accounts",
			"guides/migration-guides",

			// Business
			"business/market-analysis",
			"business/product-strategy",
			"business/business-model",
			"business/success-metrics",
			"business/risk-assessment",
			"business/partnership-opportunities",
			"business/roi-analysis",

			// Compliance
			"compliance/regulatory-framework",
			"compliance/data-protection",
			"compliance/financial-compliance",
			"compliance/operational-compliance",
			"compliance/sadc-requirements",
			"compliance/audit-procedures",

			// Resources
			"resources/code-samples",
			"resources/sdks-libraries",
			"resources/tools-utilities",
			"resources/database-schema",
			"resources/configuration-templates",
			"resources/error-codes",
			"resources/external-resources",
		},
		Sections: map[string]Category{
			"platform-overview":  "getting-started",
			"target-users":       "getting-started",
			"key-features":       "getting-started",
			"market-context":     "getting-started",
			"quick-setup":        "quick-setup",
			"architecture":       "architecture",
			"data-models":        "data-models",
			"core-features":      "core-features",
			"advanced-features":  "advanced-features",
			"development":        "development",
			"testing":            "testing",
			"api-reference":      "api-reference",
			"integration":        "integration",
			"security":           "security",
			"security-practices": "security",
			"deployment":         "deployment",
			"infrastructure":     "infrastructure",
			"guides":             "guides",
			"business":           "business",
			"compliance":         "compliance",
			"resources":          "resources",
		},
		Fallback: "guides",
		NextSteps: []string{
			"Run: mintlify dev",
			"Replace placeholder content with actual documentation",
			"Follow Mintlify best practices (no < > in tables, cols={2})",
			"Test your documentation build",
		},
	}
}
