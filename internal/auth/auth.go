// Package auth authorises JobService calls using the identity in the client's
// mTLS certificate. The certificate's CN names the client and its first OU
// names its Role.
package auth

import (
	"context"
	"fmt"
	"slices"

	api "github.com/nixpig/jobqueue/api/v1"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/peer"
)

type Permission string

const (
	PermissionJobSubmit Permission = "job:submit"
	PermissionJobRemove Permission = "job:remove"
	PermissionJobList   Permission = "job:list"
	PermissionJobWatch  Permission = "job:watch"
)

type Role string

const (
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

var RolePermissions = map[Role][]Permission{
	RoleOperator: {
		PermissionJobSubmit,
		PermissionJobRemove,
		PermissionJobList,
		PermissionJobWatch,
	},
	RoleViewer: {PermissionJobList, PermissionJobWatch},
}

var MethodPermissions = map[string]Permission{
	api.JobService_SetupJob_FullMethodName:           PermissionJobSubmit,
	api.JobService_SubmitJob_FullMethodName:          PermissionJobSubmit,
	api.JobService_RemoveJob_FullMethodName:          PermissionJobRemove,
	api.JobService_RemoveAllJobs_FullMethodName:      PermissionJobRemove,
	api.JobService_ListJobs_FullMethodName:           PermissionJobList,
	api.JobService_WatchNotifications_FullMethodName: PermissionJobWatch,
}

// Identity is the verified identity of a client.
type Identity struct {
	CN   string
	Role Role
}

// GetClientIdentity returns the CN and first OU of the verified client
// certificate of the peer in ctx.
func GetClientIdentity(ctx context.Context) (string, string, error) {
	p, ok := peer.FromContext(ctx)
	if !ok {
		return "", "", fmt.Errorf("failed to get peer info from context")
	}

	tlsInfo, ok := p.AuthInfo.(credentials.TLSInfo)
	if !ok {
		return "", "", fmt.Errorf("failed to get TLS info from peer auth info")
	}

	if len(tlsInfo.State.VerifiedChains) == 0 ||
		len(tlsInfo.State.VerifiedChains[0]) == 0 {
		return "", "", fmt.Errorf("no verified chains in TLS info")
	}

	cert := tlsInfo.State.VerifiedChains[0][0]

	cn := cert.Subject.CommonName

	var ou string
	if len(cert.Subject.OrganizationalUnit) > 0 {
		ou = cert.Subject.OrganizationalUnit[0]
	}

	return cn, ou, nil
}

func IsAuthorised(clientRole Role, method string) error {
	requiredPermission, exists := MethodPermissions[method]
	if !exists {
		return fmt.Errorf("specified method not in method permissions")
	}

	permissions, ok := RolePermissions[clientRole]
	if !ok {
		return fmt.Errorf("specified role not in role permissions")
	}

	if !slices.Contains(permissions, requiredPermission) {
		return fmt.Errorf("required permission not in permissions for role")
	}

	return nil
}

// Authorise checks the client in ctx may call method and returns its
// Identity.
func Authorise(ctx context.Context, method string) (Identity, error) {
	cn, ou, err := GetClientIdentity(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("get client identity: %w", err)
	}

	if cn == "" {
		return Identity{}, fmt.Errorf("client certificate has no common name")
	}

	id := Identity{CN: cn, Role: Role(ou)}

	if err := IsAuthorised(id.Role, method); err != nil {
		return id, fmt.Errorf("authorise client: %w", err)
	}

	return id, nil
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the Identity stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
