package httpx

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v %s %s status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// Auth verifies the request's bearer token and stores the verified user ID
// in the context under "uid". Requests without a valid token are rejected.
func Auth(verify func(ctx context.Context, token string) (string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			Abort(c, status.Error(codes.Unauthenticated, "missing bearer token"))
			return
		}
		uid, err := verify(c.Request.Context(), token)
		if err != nil {
			Abort(c, err)
			return
		}
		c.Set("uid", uid)
		c.Next()
	}
}

// Error writes err as {"error": message} with the HTTP status implied by
// its grpc code.
func Error(c *gin.Context, err error) {
	st, _ := status.FromError(err)
	c.JSON(httpStatus(st.Code()), gin.H{"error": st.Message()})
}

// Abort is Error for middleware, stopping the handler chain.
func Abort(c *gin.Context, err error) {
	st, _ := status.FromError(err)
	c.AbortWithStatusJSON(httpStatus(st.Code()), gin.H{"error": st.Message()})
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument, codes.FailedPrecondition:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.Aborted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
