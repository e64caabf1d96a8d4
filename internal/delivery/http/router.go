package http

import (
	"github.com/LavaJover/shvark-referral-service/internal/delivery/http/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Attribution *handlers.AttributionHandler
	Link        *handlers.LinkHandler
	Webhook     *handlers.WebhookHandler
	Rule        *handlers.RuleHandler
	Program     *handlers.ProgramHandler
	Stats       *handlers.StatsHandler
}

func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/attributions", h.Attribution.Capture)
		v1.GET("/attributions/:visitorID", h.Attribution.CurrentReferrer)

		v1.POST("/links/resolve", h.Link.Resolve)
		v1.PUT("/links", h.Link.SetLink)
		v1.GET("/links/:userID", h.Link.GetLinks)
		v1.POST("/clicks", h.Link.RecordClick)

		v1.POST("/webhooks/payments", h.Webhook.HandleTransactionEvent)

		v1.GET("/ledger/:transactionID", h.Webhook.GetLedgerEntry)
		v1.POST("/ledger/:transactionID/transferred", h.Webhook.MarkTransferred)
		v1.POST("/ledger/:transactionID/transfer-failed", h.Webhook.MarkTransferFailed)
		v1.POST("/ledger/:transactionID/retry-transfer", h.Webhook.RetryTransfer)

		v1.POST("/rules", h.Rule.CreateRule)
		v1.GET("/rules/:ruleID", h.Rule.GetRule)
		v1.PUT("/rules/:ruleID", h.Rule.UpdateRule)
		v1.DELETE("/rules/:ruleID", h.Rule.DeleteRule)
		v1.GET("/referrers/:referrerID/rules", h.Rule.GetRulesByReferrer)

		v1.POST("/programs", h.Program.CreateProgram)
		v1.GET("/programs", h.Program.GetPrograms)
		v1.GET("/programs/:platformKey", h.Program.GetProgram)
		v1.PUT("/programs/:platformKey", h.Program.UpdateProgram)
		v1.POST("/programs/:platformKey/deactivate", h.Program.DeactivateProgram)
		v1.POST("/referrer-codes", h.Program.GenerateReferrerCode)

		v1.GET("/stats/referrers/:referrerID", h.Stats.GetReferrerStats)
		v1.GET("/stats/referrers/:referrerID/platforms", h.Stats.GetPlatformStats)
	}
}
