/*
Package cli is the rdsctl command line host.

Every catalog operation becomes one command named after the API in kebab
case, grouped by resource:

	rdsctl add-role-to-db-instance --db-instance-identifier db-1 \
		--role-arn arn:aws:iam::123456789012:role/AccessRole
	rdsctl describe-db-instances --max-items 50 -o yaml
	rdsctl delete-db-snapshot --db-snapshot-identifier nightly --force

Flags are generated from each operation's parameters and only the flags
given on the command line are bound, so omitted options never reach the
request. List values use repeatable flags: tags as Key=Value, filters as
Name=v1,v2 and parameter group settings as Name=Value[:apply-method].

Destructive commands prompt on the terminal; without a terminal they are
refused unless --force is given. Errors are printed with their diagnostic
and make the process exit with status 1.
*/
package cli
