package router

import (
	"net/http"

	accesshandler "contentdesk/internal/access"
	"contentdesk/internal/access/gate"
	contenthandler "contentdesk/internal/content"
	"contentdesk/internal/content/service"
	"contentdesk/internal/content/store"
	"contentdesk/middleware"
	"contentdesk/socket"
)

func Setup(contentStore *store.ContentStore, accessGate *gate.AccessGate, hub *socket.Hub) http.Handler {
	mux := http.NewServeMux()

	auth := middleware.Auth(accessGate)

	// WebSocket change feed
	mux.Handle("/ws", auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		socket.ServeWs(hub, w, r)
	})))

	// REST API
	contentService := service.NewContentService(contentStore, hub)
	contentHandler := contenthandler.NewContentHandler(contentService)
	accessHandler := accesshandler.NewAccessHandler(accessGate)

	mux.Handle("/api/access/verify", http.HandlerFunc(accessHandler.VerifyAccess))
	mux.Handle("/api/access/logout", auth(http.HandlerFunc(accessHandler.Logout)))
	mux.Handle("/api/access/session", http.HandlerFunc(accessHandler.Session))

	mux.Handle("/api/contents", auth(http.HandlerFunc(contentHandler.GetContents)))
	mux.Handle("/api/contents/create", auth(http.HandlerFunc(contentHandler.CreateContent)))
	mux.Handle("/api/contents/update", auth(http.HandlerFunc(contentHandler.UpdateContent)))
	mux.Handle("/api/contents/delete", auth(http.HandlerFunc(contentHandler.DeleteContent)))

	return middleware.CORSMiddleware(mux)
}
