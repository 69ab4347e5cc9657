package rbac

// Default policy. A learner owns their own progress, notes and profile;
// admins can additionally inspect and refund orders.
var RolePermissions = map[string][]string{
	"learner": {
		"catalog:view",
		"progress:read",
		"progress:write",
		"notes:read",
		"notes:write",
		"profile:view",
		"profile:edit",
		"orders:view-own",
	},
	"admin": {
		"*", // everything
	},
}
