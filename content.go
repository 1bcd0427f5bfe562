package limitdocs

// ReportMeta carries the document-level values stamped into the builtin report.
type ReportMeta struct {
	Version   string // e.g. "1.1.0"
	Generated string // human-readable generation timestamp
}

// Document identity constants for the builtin report.
const (
	DocumentTitle        = "Redis Rate Limiter"
	DocumentSubtitle     = "Production Documentation"
	DocumentTagline      = "Token Bucket Algorithm with Distributed State"
	DocumentOrganization = "Jules MCP Server - Antigravity Orchestration"
	DefaultVersion       = "1.1.0"
)

// quickStartExample is the integration snippet shown in the guide.
const quickStartExample = `// 1. Import the rate limiter
import { createRateLimiter } from './middleware/rateLimiter.js';

// 2. Create and initialize
const rateLimiter = createRateLimiter();
await rateLimiter.initialize();

// 3. Apply middleware
app.use('/api/', rateLimiter.middleware());

// 4. Add metrics endpoint
app.get('/api/rate-limit/metrics', (req, res) => {
  res.json(rateLimiter.getMetrics());
});`

// BuiltinReport returns the rate limiter production documentation content.
// Sections mirror the published document: architecture, tier configuration,
// integration guide, security hardening, API reference, and metrics.
func BuiltinReport(meta ReportMeta) *Report {
	if meta.Version == "" {
		meta.Version = DefaultVersion
	}

	return &Report{
		Sections: []Section{
			architectureSection(),
			tierConfigurationSection(),
			integrationGuideSection(),
			securityHardeningSection(meta.Version),
			apiReferenceSection(),
			metricsSection(meta),
		},
	}
}

func architectureSection() Section {
	return Section{
		Title: "Architecture Overview",
		Blocks: []Block{
			Heading{Level: 2, Text: "System Architecture"},
			Paragraph{Text: "The rate limiter implements a distributed token bucket algorithm using Redis for state management. " +
				"It supports per-API-key rate limiting with tiered configurations and graceful failover to local memory when Redis is unavailable."},
			Heading{Level: 2, Text: "Key Components"},
			BulletList{Items: []string{
				"**Express Middleware** - Intercepts requests and applies rate limiting",
				"**Redis Backend** - Distributed state management with atomic Lua scripts",
				"**Failover Cache** - Local memory backup when Redis is unavailable",
				"**Tier System** - Configurable limits per subscription tier",
			}},
		},
	}
}

func tierConfigurationSection() Section {
	return Section{
		Title: "Tier Configuration",
		Blocks: []Block{
			Paragraph{Text: "The rate limiter supports three tiers with configurable limits. Each tier uses the token bucket algorithm " +
				"with different refill rates and burst capacities."},
			Table{
				Header: []string{"Tier", "Requests/Min", "Burst Capacity", "Refill Rate", "Window"},
				Rows: [][]string{
					{"Free", "100", "150", "1.67/sec", "60s"},
					{"Pro", "1,000", "1,500", "16.67/sec", "60s"},
					{"Enterprise", "100,000", "150,000", "1,666.67/sec", "60s"},
				},
			},
			Heading{Level: 2, Text: "Security Change (v1.1.0): Enterprise tier bypass removed"},
			Paragraph{Text: "The enterprise tier no longer bypasses rate limiting entirely. Instead, it has very high limits " +
				"(100,000 requests/minute) to maintain protection against abuse while providing practically unlimited access for legitimate use."},
		},
	}
}

func integrationGuideSection() Section {
	return Section{
		Title: "Integration Guide",
		Blocks: []Block{
			Heading{Level: 2, Text: "Quick Start"},
			CodeBlock{Language: "js", Code: quickStartExample},
			Heading{Level: 2, Text: "Environment Variables"},
			Table{
				Header: []string{"Variable", "Description", "Default"},
				Rows: [][]string{
					{"REDIS_URL", "Redis connection (use rediss:// for TLS)", "redis://localhost:6379"},
					{"NODE_ENV", "Environment (enables TLS warning)", "development"},
					{"RATE_LIMIT_FAILOVER", "Failover strategy", "fail-closed"},
				},
			},
		},
	}
}

func securityHardeningSection(version string) Section {
	return Section{
		Title: "Security Hardening (v" + version + ")",
		Blocks: []Block{
			Paragraph{Text: "Critical security fixes were applied to address vulnerabilities identified in the security audit."},
			Table{
				Header: []string{"Issue", "Severity", "Fix", "Status"},
				Rows: [][]string{
					{"Stack trace in logs", "CRITICAL", "Removed err.stack from all error logs", "FIXED"},
					{"Redis TLS not enforced", "CRITICAL", "Added validateRedisUrl() warning", "FIXED"},
					{"X-Forwarded-For spoofing", "HIGH", "Use req.socket.remoteAddress", "FIXED"},
					{"API key in query string", "HIGH", "Deprecated and ignored", "FIXED"},
					{"Enterprise bypass", "HIGH", "Replaced with 100k/min limit", "FIXED"},
				},
			},
			Heading{Level: 2, Text: "Security Best Practices"},
			BulletList{Items: []string{
				"**Use TLS for Redis:** Set REDIS_URL to rediss://... in production",
				"**API keys in headers only:** Never pass API keys in query strings",
				"**Monitor error logs:** Stack traces no longer expose credentials",
				"**Trust socket address:** X-Forwarded-For can be spoofed by attackers",
			}},
		},
	}
}

func apiReferenceSection() Section {
	return Section{
		Title: "API Reference",
		Blocks: []Block{
			Heading{Level: 2, Text: "RedisRateLimiter Class"},
			Table{
				Header: []string{"Method", "Parameters", "Returns", "Description"},
				Rows: [][]string{
					{"initialize()", "None", "Promise<boolean>", "Connect to Redis"},
					{"middleware()", "None", "Express middleware", "Create middleware"},
					{"getTier(apiKey)", "string", "Promise<string>", "Get tier for key"},
					{"setTier(apiKey, tier)", "string, string", "Promise<object>", "Set tier for key"},
					{"getMetrics()", "None", "object", "Get metrics"},
					{"close()", "None", "Promise<void>", "Close connection"},
				},
			},
			Heading{Level: 2, Text: "Response Headers"},
			Table{
				Header: []string{"Header", "Description", "Example"},
				Rows: [][]string{
					{"RateLimit-Limit", "Maximum requests per window", "100"},
					{"RateLimit-Remaining", "Requests remaining", "42"},
					{"RateLimit-Reset", "Unix timestamp for reset", "1702814460"},
					{"Retry-After", "Seconds until next request", "45"},
				},
			},
		},
	}
}

func metricsSection(meta ReportMeta) Section {
	closing := "Rate Limiter Documentation"
	if meta.Generated != "" {
		closing += " | Generated: " + meta.Generated
	}
	closing += " | v" + meta.Version

	return Section{
		Title: "Metrics & Monitoring",
		Blocks: []Block{
			Paragraph{Text: "The rate limiter exposes Prometheus-ready metrics via /api/rate-limit/metrics endpoint."},
			Table{
				Header: []string{"Metric", "Type", "Description"},
				Rows: [][]string{
					{"totalRequests", "Counter", "Total requests processed"},
					{"allowedRequests", "Counter", "Requests allowed through"},
					{"deniedRequests", "Counter", "Requests denied (429)"},
					{"redisErrors", "Counter", "Redis connection errors"},
					{"redisConnected", "Gauge", "Redis connection status"},
					{"requestsPerSecond", "Gauge", "Current request throughput"},
				},
			},
			Heading{Level: 2, Text: "Dashboard Component"},
			Paragraph{Text: "A React component (RateLimiterMetrics.jsx) is available for visualizing rate limiter metrics in the dashboard. " +
				"It polls the metrics endpoint every 5 seconds and displays requests/sec, allowed/blocked counts, and Redis status."},
			Paragraph{Text: closing},
		},
	}
}
