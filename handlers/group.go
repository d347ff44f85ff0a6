package handlers

import (
	"net/http"

	"little-lemon-api/services"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	Groups *services.GroupService
}

func NewGroupHandler(groups *services.GroupService) *GroupHandler {
	return &GroupHandler{Groups: groups}
}

type AddGroupMemberRequest struct {
	Username string `json:"username"`
	UserID   uint   `json:"user_id"`
}

// List returns the members of a group (manager only).
func (h *GroupHandler) List(c *gin.Context) {
	members, err := h.Groups.Members(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(members), "users": members})
}

// Add puts a user into the group, creating the group on first use
// (manager only).
func (h *GroupHandler) Add(c *gin.Context) {
	var req AddGroupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Groups.Add(c.Param("name"), req.Username, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User added to group " + c.Param("name"),
		"user":    user,
	})
}

// Remove takes a user out of the group (manager only).
func (h *GroupHandler) Remove(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	user, err := h.Groups.Remove(c.Param("name"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User removed from group " + c.Param("name"),
		"user":    user,
	})
}
