package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"famboard/internal/realtime"
	"famboard/internal/repositories"
	"famboard/pkg/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, replace with proper origin checking
	},
}

type RealtimeController struct {
	hub        *realtime.Hub
	userRepo   repositories.UserRepository
	memberRepo repositories.FamilyMemberRepository
	logger     *zap.Logger
}

func NewRealtimeController(
	hub *realtime.Hub,
	userRepo repositories.UserRepository,
	memberRepo repositories.FamilyMemberRepository,
	logger *zap.Logger) *RealtimeController {
	return &RealtimeController{
		hub:        hub,
		userRepo:   userRepo,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// HandleConnection authenticates the handshake and upgrades it to a
// websocket. The token travels as a query parameter because this is an
// out-of-band persistent channel, not a normal HTTP request. A rejected
// handshake never reaches the hub.
func (r *RealtimeController) HandleConnection(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Token is required")
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	user, err := r.userRepo.FindByID(c.Request.Context(), claims.UserID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unknown user")
		return
	}

	// Join one channel per current membership before the pumps start.
	memberships, err := r.memberRepo.ListByUserID(c.Request.Context(), claims.UserID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	familyIDs := make([]string, 0, len(memberships))
	for _, membership := range memberships {
		familyIDs = append(familyIDs, membership.FamilyID.String())
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		r.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := realtime.NewClient(r.hub, conn, claims.UserID, claims.Email)
	r.hub.Register(client, familyIDs)

	go client.WritePump()
	go client.ReadPump()
}
