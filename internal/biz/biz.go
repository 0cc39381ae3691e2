package biz

import (
	"github.com/fsociety-space/fsociety-core/internal/biz/usecase"
)

// Usecases contains all usecases
type Usecases struct {
	Identity   *usecase.IdentityUsecase
	Wall       *usecase.WallUsecase
	Submission *usecase.SubmissionPipeline
	Void       *usecase.SubmissionPipeline
	Reply      *usecase.ReplyPipeline
	Wins       *usecase.WinsUsecase
	Pulse      *usecase.PulseUsecase
}
