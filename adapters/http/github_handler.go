package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	githubUC "github.com/HPainhas/DevConnector/internal/application/usecase/github"
)

type GithubHandler struct {
	listReposUseCase *githubUC.ListReposUseCase
}

func NewGithubHandler(uc *githubUC.ListReposUseCase) *GithubHandler {
	return &GithubHandler{listReposUseCase: uc}
}

func (h *GithubHandler) ListRepos(c *gin.Context) {
	repos, err := h.listReposUseCase.Execute(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, repos)
}
