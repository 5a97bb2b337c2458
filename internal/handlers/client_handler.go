package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clients-api/internal/dto"
	"github.com/BruksfildServices01/clients-api/internal/httperr"
	"github.com/BruksfildServices01/clients-api/internal/httpresp"
	"github.com/BruksfildServices01/clients-api/internal/models"
	"github.com/BruksfildServices01/clients-api/internal/pagination"
	ucClient "github.com/BruksfildServices01/clients-api/internal/usecase/client"
)

// ======================================================
// HANDLER
// ======================================================

// ClientHandler only parses input and shapes output. Every failure is
// pushed with c.Error and rendered by httperr.Handler.
type ClientHandler struct {
	findByID *ucClient.FindClientByID
	list     *ucClient.ListClients
	insert   *ucClient.InsertClient
	update   *ucClient.UpdateClient
	del      *ucClient.DeleteClient
}

func NewClientHandler(
	findByID *ucClient.FindClientByID,
	list *ucClient.ListClients,
	insert *ucClient.InsertClient,
	update *ucClient.UpdateClient,
	del *ucClient.DeleteClient,
) *ClientHandler {
	return &ClientHandler{
		findByID: findByID,
		list:     list,
		insert:   insert,
		update:   update,
		del:      del,
	}
}

// ======================================================
// READ
// ======================================================

func (h *ClientHandler) FindByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	out, err := h.findByID.Execute(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OK(c, out)
}

func (h *ClientHandler) List(c *gin.Context) {
	req, err := pagination.FromQuery(c.Request.URL.Query(), models.ClientSortColumns)
	if err != nil {
		_ = c.Error(httperr.NewBusiness(httperr.CodeInvalidSort, "Parâmetro de ordenação inválido"))
		return
	}

	page, err := h.list.Execute(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.Page(c, page)
}

// ======================================================
// WRITE
// ======================================================

func (h *ClientHandler) Insert(c *gin.Context) {
	var body dto.ClientDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		_ = c.Error(httperr.Binding(err))
		return
	}

	out, err := h.insert.Execute(c.Request.Context(), body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.Created(c, *out.ID, out)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var body dto.ClientDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		_ = c.Error(httperr.Binding(err))
		return
	}

	out, err := h.update.Execute(c.Request.Context(), id, body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OK(c, out)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.del.Execute(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// HELPERS
// ======================================================

// pathID accepts any int64. Ids that can never exist answer 404 directly,
// only non-numeric or out of range values are a bad request.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidID, "Identificador inválido")
		return 0, false
	}
	if id <= 0 {
		httperr.NotFound(c, httperr.CodeClientNotFound, httperr.ErrClientNotFound.Message)
		return 0, false
	}
	return uint(id), true
}
