package util

import (
	"context"
	"net/http"

	"NestorAI/app/common/consts/biz"

	"github.com/zeromicro/x/errors"
)

// Identity is the verified caller extracted from a bearer identity token.
type Identity struct {
	Uid   string
	Email string
}

func IdentityFromCtx(ctx context.Context) (Identity, error) {
	if ctx == nil {
		return Identity{}, errors.New(http.StatusUnauthorized, "missing context")
	}

	switch val := ctx.Value(biz.IDENTITY_KEY).(type) {
	case Identity:
		return val, nil
	}

	return Identity{}, errors.New(http.StatusUnauthorized, "unauthorized")
}

func InjectIdentity2Ctx(r *http.Request, id Identity) {
	ctx := context.WithValue(r.Context(), biz.IDENTITY_KEY, id)
	*r = *r.WithContext(ctx)
}
