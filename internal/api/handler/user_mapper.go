package handler

import (
	"github.com/foundever/reactions/internal/core/domain"
	"github.com/foundever/reactions/internal/core/ports"
)

func toDomainRole(role *string) *domain.Role {
	if role == nil {
		return nil
	}
	r := domain.Role(*role)
	return &r
}

func toDomainReactions(r *reactionsRequest) *domain.Reactions {
	if r == nil {
		return nil
	}
	return &domain.Reactions{
		PlusOne:  r.PlusOne,
		MinusOne: r.MinusOne,
		Laugh:    r.Laugh,
		Confused: r.Confused,
		Heart:    r.Heart,
		Hooray:   r.Hooray,
		Rocket:   r.Rocket,
		Eyes:     r.Eyes,
	}
}

func toCreateUserInput(req createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Username:       req.Username,
		Role:           toDomainRole(req.Role),
		Reactions:      toDomainReactions(req.Reactions),
		LastReactionAt: req.LastReactionAt,
	}
}

func toUpdateUserInput(req updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Username:       req.Username,
		Role:           toDomainRole(req.Role),
		Reactions:      toDomainReactions(req.Reactions),
		LastReactionAt: req.LastReactionAt,
	}
}

func toUserViewResponses(views []ports.UserView) []userViewResponse {
	out := make([]userViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, userViewResponse{
			ID:       v.ID,
			Username: v.Username,
			Role:     v.Role,
			Reactions: reactionsResponse{
				PlusOne:  v.Reactions.PlusOne,
				MinusOne: v.Reactions.MinusOne,
				Laugh:    v.Reactions.Laugh,
				Confused: v.Reactions.Confused,
				Heart:    v.Reactions.Heart,
				Hooray:   v.Reactions.Hooray,
				Rocket:   v.Reactions.Rocket,
				Eyes:     v.Reactions.Eyes,
			},
			LastReactionAt: v.LastReactionAt,
			CreatedAt:      v.CreatedAt,
			UpdatedAt:      v.UpdatedAt,
		})
	}
	return out
}
