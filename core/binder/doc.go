// Package binder decodes HTTP request bodies into structs.
//
//	var req contactRequest
//	if err := binder.JSON()(ctx.Request(), &req); err != nil {
//		switch {
//		case errors.Is(err, binder.ErrBodyTooLarge):
//			return response.Error(response.ErrRequestEntityTooLarge)
//		case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
//			return response.Error(response.ErrUnsupportedMediaType)
//		}
//		return response.Error(response.ErrBadRequest)
//	}
package binder
