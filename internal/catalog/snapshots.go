package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/rdsctl/rdsctl/internal/adapter"
	rdsapi "github.com/rdsctl/rdsctl/internal/rds"
)

var snapshots = []adapter.Descriptor{
	CreateDBSnapshot,
	CopyDBSnapshot,
	DeleteDBSnapshot,
	DescribeDBSnapshots,
	CreateDBClusterSnapshot,
	CopyDBClusterSnapshot,
	DeleteDBClusterSnapshot,
	DescribeDBClusterSnapshots,
}

var CreateDBSnapshot = &adapter.Operation[rds.CreateDBSnapshotInput, rds.CreateDBSnapshotOutput]{
	Info: adapter.Info{
		Name:        "CreateDBSnapshot",
		Description: "Creates a snapshot of a DB instance",
		Target:      "DBSnapshotIdentifier",
		Select:      "DBSnapshot",
		Params: params(
			required("DBInstanceIdentifier"),
			required("DBSnapshotIdentifier"),
			tags(),
		),
	},
	Call: rdsapi.API.CreateDBSnapshot,
}

// CopyDBSnapshot leaves CopyTags unset unless CopyTag is bound, so the
// service default applies.
var CopyDBSnapshot = &adapter.Operation[rds.CopyDBSnapshotInput, rds.CopyDBSnapshotOutput]{
	Info: adapter.Info{
		Name:        "CopyDBSnapshot",
		Description: "Copies a DB snapshot",
		Target:      "TargetDBSnapshotIdentifier",
		Select:      "DBSnapshot",
		Params: params(
			required("SourceDBSnapshotIdentifier"),
			required("TargetDBSnapshotIdentifier"),
			describe(mapped("CopyTag", "CopyTags", adapter.KindBool), "copy the source snapshot tags"),
			optional("KmsKeyId"),
			optional("OptionGroupName"),
			describe(optional("SourceRegion"), "region of a cross-region source snapshot"),
			optional("PreSignedUrl"),
			tags(),
		),
	},
	Call: rdsapi.API.CopyDBSnapshot,
}

var DeleteDBSnapshot = &adapter.Operation[rds.DeleteDBSnapshotInput, rds.DeleteDBSnapshotOutput]{
	Info: adapter.Info{
		Name:        "DeleteDBSnapshot",
		Description: "Deletes a DB snapshot",
		Destructive: true,
		Target:      "DBSnapshotIdentifier",
		Select:      "DBSnapshot",
		Params:      params(required("DBSnapshotIdentifier")),
	},
	Call: rdsapi.API.DeleteDBSnapshot,
}

var DescribeDBSnapshots = &adapter.Operation[rds.DescribeDBSnapshotsInput, rds.DescribeDBSnapshotsOutput]{
	Info: adapter.Info{
		Name:        "DescribeDBSnapshots",
		Description: "Lists DB snapshots",
		Select:      "DBSnapshots",
		Params: append(params(
			optional("DBInstanceIdentifier"),
			optional("DBSnapshotIdentifier"),
			describe(optional("SnapshotType"), "automated, manual, shared, public or awsbackup"),
			typed("IncludeShared", adapter.KindBool),
			typed("IncludePublic", adapter.KindBool),
		), listParams()...),
		Paging: paged(),
	},
	Call: rdsapi.API.DescribeDBSnapshots,
}

var CreateDBClusterSnapshot = &adapter.Operation[rds.CreateDBClusterSnapshotInput, rds.CreateDBClusterSnapshotOutput]{
	Info: adapter.Info{
		Name:        "CreateDBClusterSnapshot",
		Description: "Creates a snapshot of a DB cluster",
		Target:      "DBClusterSnapshotIdentifier",
		Select:      "DBClusterSnapshot",
		Params: params(
			required("DBClusterIdentifier"),
			required("DBClusterSnapshotIdentifier"),
			tags(),
		),
	},
	Call: rdsapi.API.CreateDBClusterSnapshot,
}

var CopyDBClusterSnapshot = &adapter.Operation[rds.CopyDBClusterSnapshotInput, rds.CopyDBClusterSnapshotOutput]{
	Info: adapter.Info{
		Name:        "CopyDBClusterSnapshot",
		Description: "Copies a DB cluster snapshot",
		Target:      "TargetDBClusterSnapshotIdentifier",
		Select:      "DBClusterSnapshot",
		Params: params(
			required("SourceDBClusterSnapshotIdentifier"),
			required("TargetDBClusterSnapshotIdentifier"),
			mapped("CopyTag", "CopyTags", adapter.KindBool),
			optional("KmsKeyId"),
			tags(),
		),
	},
	Call: rdsapi.API.CopyDBClusterSnapshot,
}

var DeleteDBClusterSnapshot = &adapter.Operation[rds.DeleteDBClusterSnapshotInput, rds.DeleteDBClusterSnapshotOutput]{
	Info: adapter.Info{
		Name:        "DeleteDBClusterSnapshot",
		Description: "Deletes a DB cluster snapshot",
		Destructive: true,
		Target:      "DBClusterSnapshotIdentifier",
		Select:      "DBClusterSnapshot",
		Params:      params(required("DBClusterSnapshotIdentifier")),
	},
	Call: rdsapi.API.DeleteDBClusterSnapshot,
}

var DescribeDBClusterSnapshots = &adapter.Operation[rds.DescribeDBClusterSnapshotsInput, rds.DescribeDBClusterSnapshotsOutput]{
	Info: adapter.Info{
		Name:        "DescribeDBClusterSnapshots",
		Description: "Lists DB cluster snapshots",
		Select:      "DBClusterSnapshots",
		Params: append(params(
			optional("DBClusterIdentifier"),
			optional("DBClusterSnapshotIdentifier"),
			optional("SnapshotType"),
			typed("IncludeShared", adapter.KindBool),
			typed("IncludePublic", adapter.KindBool),
		), listParams()...),
		Paging: paged(),
	},
	Call: rdsapi.API.DescribeDBClusterSnapshots,
}
