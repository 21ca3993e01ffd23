/*
Package config provides layered configuration for rdsctl.

Values are resolved from lowest to highest priority:

	compiled-in defaults (NewDefault)
	YAML file (--config, or ~/.rdsctl.yaml when present)
	environment (RDSCTL_*, AWS_REGION, AWS_PROFILE)
	command line flags (applied by the cli package)

Example file:

	global:
	  log_level: INFO
	  log_format: json
	aws:
	  region: eu-west-1
	  profile: ops
	  max_retries: 5
	output:
	  format: yaml
	paging:
	  page_size: 50

Validate rejects unknown log levels, formats and page sizes outside the
20..100 range accepted by the RDS Describe APIs.
*/
package config
