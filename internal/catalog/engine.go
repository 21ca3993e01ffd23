package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/rdsctl/rdsctl/internal/adapter"
	rdsapi "github.com/rdsctl/rdsctl/internal/rds"
)

var engine = []adapter.Descriptor{
	DescribeDBEngineVersions,
	DescribeDBLogFiles,
}

var DescribeDBEngineVersions = &adapter.Operation[rds.DescribeDBEngineVersionsInput, rds.DescribeDBEngineVersionsOutput]{
	Info: adapter.Info{
		Name:        "DescribeDBEngineVersions",
		Description: "Lists available database engine versions",
		Select:      "DBEngineVersions",
		Params: append(params(
			optional("Engine"),
			optional("EngineVersion"),
			optional("DBParameterGroupFamily"),
			typed("DefaultOnly", adapter.KindBool),
			typed("IncludeAll", adapter.KindBool),
			typed("ListSupportedCharacterSets", adapter.KindBool),
		), listParams()...),
		Paging: paged(),
	},
	Call: rdsapi.API.DescribeDBEngineVersions,
}

var DescribeDBLogFiles = &adapter.Operation[rds.DescribeDBLogFilesInput, rds.DescribeDBLogFilesOutput]{
	Info: adapter.Info{
		Name:        "DescribeDBLogFiles",
		Description: "Lists the log files of a DB instance",
		Select:      "DescribeDBLogFiles",
		Params: append(params(
			required("DBInstanceIdentifier"),
			optional("FilenameContains"),
			describe(typed("FileLastWritten", adapter.KindInt), "only files written since this POSIX timestamp in milliseconds"),
			describe(typed("FileSize", adapter.KindInt), "only files larger than this many bytes"),
		), listParams()...),
		Paging: paged(),
	},
	Call: rdsapi.API.DescribeDBLogFiles,
}
