// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysesColumns holds the columns for the "analyses" table.
	AnalysesColumns = []*schema.Column{
		{Name: "analysis_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "url", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "complete", "failed"}, Default: "pending"},
		{Name: "trigger_type", Type: field.TypeEnum, Enums: []string{"manual", "daily", "weekly", "deploy"}, Default: "manual"},
		{Name: "parent_analysis_id", Type: field.TypeString, Nullable: true},
		{Name: "deploy_id", Type: field.TypeString, Nullable: true},
		{Name: "desktop_screenshot_url", Type: field.TypeString, Nullable: true},
		{Name: "mobile_screenshot_url", Type: field.TypeString, Nullable: true},
		{Name: "freeform_output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "structured_output", Type: field.TypeJSON, Nullable: true},
		{Name: "changes_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "page_id", Type: field.TypeString},
	}
	// AnalysesTable holds the schema information for the "analyses" table.
	AnalysesTable = &schema.Table{
		Name:       "analyses",
		Columns:    AnalysesColumns,
		PrimaryKey: []*schema.Column{AnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analyses_pages_analyses",
				Columns:    []*schema.Column{AnalysesColumns[19]},
				RefColumns: []*schema.Column{PagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysis_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[3], AnalysesColumns[16]},
			},
			{
				Name:    "analysis_page_id_status",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[19], AnalysesColumns[3]},
			},
			{
				Name:    "analysis_user_id_trigger_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[1], AnalysesColumns[4], AnalysesColumns[16]},
			},
			{
				Name:    "analysis_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[3], AnalysesColumns[15]},
			},
			{
				Name:    "analysis_deploy_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[6]},
			},
		},
	}
	// AnalyticsConnectionsColumns holds the columns for the "analytics_connections" table.
	AnalyticsConnectionsColumns = []*schema.Column{
		{Name: "connection_id", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"posthog", "ga4", "supabase"}},
		{Name: "encrypted_credentials", Type: field.TypeBytes},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "error"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// AnalyticsConnectionsTable holds the schema information for the "analytics_connections" table.
	AnalyticsConnectionsTable = &schema.Table{
		Name:       "analytics_connections",
		Columns:    AnalyticsConnectionsColumns,
		PrimaryKey: []*schema.Column{AnalyticsConnectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analytics_connections_users_analytics_connections",
				Columns:    []*schema.Column{AnalyticsConnectionsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analyticsconnection_user_id_provider",
				Unique:  true,
				Columns: []*schema.Column{AnalyticsConnectionsColumns[6], AnalyticsConnectionsColumns[1]},
			},
		},
	}
	// ChangeCheckpointsColumns holds the columns for the "change_checkpoints" table.
	ChangeCheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "horizon_days", Type: field.TypeInt},
		{Name: "before_window_start", Type: field.TypeTime},
		{Name: "before_window_end", Type: field.TypeTime},
		{Name: "after_window_start", Type: field.TypeTime},
		{Name: "after_window_end", Type: field.TypeTime},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "assessment", Type: field.TypeEnum, Enums: []string{"improved", "regressed", "neutral", "inconclusive"}},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647},
		{Name: "data_sources", Type: field.TypeJSON, Nullable: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "computed_at", Type: field.TypeTime},
		{Name: "change_id", Type: field.TypeString},
	}
	// ChangeCheckpointsTable holds the schema information for the "change_checkpoints" table.
	ChangeCheckpointsTable = &schema.Table{
		Name:       "change_checkpoints",
		Columns:    ChangeCheckpointsColumns,
		PrimaryKey: []*schema.Column{ChangeCheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "change_checkpoints_detected_changes_checkpoints",
				Columns:    []*schema.Column{ChangeCheckpointsColumns[13]},
				RefColumns: []*schema.Column{DetectedChangesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "changecheckpoint_change_id_horizon_days",
				Unique:  true,
				Columns: []*schema.Column{ChangeCheckpointsColumns[13], ChangeCheckpointsColumns[1]},
			},
		},
	}
	// ChangeLifecycleEventsColumns holds the columns for the "change_lifecycle_events" table.
	ChangeLifecycleEventsColumns = []*schema.Column{
		{Name: "lifecycle_event_id", Type: field.TypeString, Unique: true},
		{Name: "from_status", Type: field.TypeString, Nullable: true},
		{Name: "to_status", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Size: 2147483647},
		{Name: "actor_type", Type: field.TypeEnum, Enums: []string{"system", "user"}},
		{Name: "checkpoint_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "change_id", Type: field.TypeString},
	}
	// ChangeLifecycleEventsTable holds the schema information for the "change_lifecycle_events" table.
	ChangeLifecycleEventsTable = &schema.Table{
		Name:       "change_lifecycle_events",
		Columns:    ChangeLifecycleEventsColumns,
		PrimaryKey: []*schema.Column{ChangeLifecycleEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "change_lifecycle_events_detected_changes_lifecycle_events",
				Columns:    []*schema.Column{ChangeLifecycleEventsColumns[7]},
				RefColumns: []*schema.Column{DetectedChangesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "changelifecycleevent_change_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChangeLifecycleEventsColumns[7], ChangeLifecycleEventsColumns[6]},
			},
			{
				Name:    "changelifecycleevent_checkpoint_id",
				Unique:  false,
				Columns: []*schema.Column{ChangeLifecycleEventsColumns[5]},
			},
		},
	}
	// DeploysColumns holds the columns for the "deploys" table.
	DeploysColumns = []*schema.Column{
		{Name: "deploy_id", Type: field.TypeString, Unique: true},
		{Name: "repo_id", Type: field.TypeString},
		{Name: "commit_sha", Type: field.TypeString},
		{Name: "full_name", Type: field.TypeString},
		{Name: "commit_message", Type: field.TypeString, Nullable: true},
		{Name: "changed_files", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "scanning", "complete"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// DeploysTable holds the schema information for the "deploys" table.
	DeploysTable = &schema.Table{
		Name:       "deploys",
		Columns:    DeploysColumns,
		PrimaryKey: []*schema.Column{DeploysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "deploys_users_deploys",
				Columns:    []*schema.Column{DeploysColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deploy_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeploysColumns[6], DeploysColumns[7]},
			},
			{
				Name:    "deploy_repo_id",
				Unique:  false,
				Columns: []*schema.Column{DeploysColumns[1]},
			},
		},
	}
	// DetectedChangesColumns holds the columns for the "detected_changes" table.
	DetectedChangesColumns = []*schema.Column{
		{Name: "change_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "element", Type: field.TypeString},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"element", "section", "page"}, Default: "element"},
		{Name: "before_value", Type: field.TypeString, Size: 2147483647},
		{Name: "after_value", Type: field.TypeString, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"watching", "validated", "regressed", "inconclusive", "reverted"}, Default: "watching"},
		{Name: "first_detected_at", Type: field.TypeTime},
		{Name: "detected_on", Type: field.TypeString},
		{Name: "first_detected_analysis_id", Type: field.TypeString, Nullable: true},
		{Name: "hypothesis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "correlation_metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "correlation_unlocked_at", Type: field.TypeTime, Nullable: true},
		{Name: "observation_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "match_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "match_rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reverted_at", Type: field.TypeTime, Nullable: true},
		{Name: "page_id", Type: field.TypeString},
	}
	// DetectedChangesTable holds the schema information for the "detected_changes" table.
	DetectedChangesTable = &schema.Table{
		Name:       "detected_changes",
		Columns:    DetectedChangesColumns,
		PrimaryKey: []*schema.Column{DetectedChangesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "detected_changes_pages_detected_changes",
				Columns:    []*schema.Column{DetectedChangesColumns[18]},
				RefColumns: []*schema.Column{PagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "detectedchange_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{DetectedChangesColumns[1], DetectedChangesColumns[7]},
			},
			{
				Name:    "detectedchange_page_id_status",
				Unique:  false,
				Columns: []*schema.Column{DetectedChangesColumns[18], DetectedChangesColumns[7]},
			},
			{
				Name:    "detectedchange_status_first_detected_at",
				Unique:  false,
				Columns: []*schema.Column{DetectedChangesColumns[7], DetectedChangesColumns[8]},
			},
			{
				Name:    "detectedchange_page_id_element_detected_on",
				Unique:  true,
				Columns: []*schema.Column{DetectedChangesColumns[18], DetectedChangesColumns[2], DetectedChangesColumns[9]},
			},
		},
	}
	// OutcomeFeedbacksColumns holds the columns for the "outcome_feedbacks" table.
	OutcomeFeedbacksColumns = []*schema.Column{
		{Name: "feedback_id", Type: field.TypeString, Unique: true},
		{Name: "checkpoint_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "feedback_type", Type: field.TypeEnum, Enums: []string{"accurate", "inaccurate"}},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "change_id", Type: field.TypeString},
	}
	// OutcomeFeedbacksTable holds the schema information for the "outcome_feedbacks" table.
	OutcomeFeedbacksTable = &schema.Table{
		Name:       "outcome_feedbacks",
		Columns:    OutcomeFeedbacksColumns,
		PrimaryKey: []*schema.Column{OutcomeFeedbacksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "outcome_feedbacks_detected_changes_outcome_feedback",
				Columns:    []*schema.Column{OutcomeFeedbacksColumns[6]},
				RefColumns: []*schema.Column{DetectedChangesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "outcomefeedback_change_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{OutcomeFeedbacksColumns[6], OutcomeFeedbacksColumns[5]},
			},
		},
	}
	// PagesColumns holds the columns for the "pages" table.
	PagesColumns = []*schema.Column{
		{Name: "page_id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString},
		{Name: "scan_frequency", Type: field.TypeEnum, Enums: []string{"daily", "weekly", "manual"}, Default: "manual"},
		{Name: "metric_focus", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "stable_baseline_id", Type: field.TypeString, Nullable: true},
		{Name: "last_scan_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// PagesTable holds the schema information for the "pages" table.
	PagesTable = &schema.Table{
		Name:       "pages",
		Columns:    PagesColumns,
		PrimaryKey: []*schema.Column{PagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pages_users_pages",
				Columns:    []*schema.Column{PagesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "page_user_id_url",
				Unique:  true,
				Columns: []*schema.Column{PagesColumns[7], PagesColumns[1]},
			},
			{
				Name:    "page_scan_frequency",
				Unique:  false,
				Columns: []*schema.Column{PagesColumns[2]},
			},
		},
	}
	// TrackedSuggestionsColumns holds the columns for the "tracked_suggestions" table.
	TrackedSuggestionsColumns = []*schema.Column{
		{Name: "suggestion_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "element", Type: field.TypeString},
		{Name: "suggested_fix", Type: field.TypeString, Size: 2147483647},
		{Name: "impact", Type: field.TypeEnum, Enums: []string{"high", "medium", "low"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "addressed", "dismissed"}, Default: "open"},
		{Name: "times_suggested", Type: field.TypeInt, Default: 1},
		{Name: "dedup_key", Type: field.TypeString},
		{Name: "first_suggested_at", Type: field.TypeTime},
		{Name: "last_suggested_at", Type: field.TypeTime},
		{Name: "page_id", Type: field.TypeString},
	}
	// TrackedSuggestionsTable holds the schema information for the "tracked_suggestions" table.
	TrackedSuggestionsTable = &schema.Table{
		Name:       "tracked_suggestions",
		Columns:    TrackedSuggestionsColumns,
		PrimaryKey: []*schema.Column{TrackedSuggestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tracked_suggestions_pages_tracked_suggestions",
				Columns:    []*schema.Column{TrackedSuggestionsColumns[11]},
				RefColumns: []*schema.Column{PagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trackedsuggestion_page_id_status",
				Unique:  false,
				Columns: []*schema.Column{TrackedSuggestionsColumns[11], TrackedSuggestionsColumns[6]},
			},
			{
				Name:    "trackedsuggestion_page_id_dedup_key",
				Unique:  true,
				Columns: []*schema.Column{TrackedSuggestionsColumns[11], TrackedSuggestionsColumns[8]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"free", "starter", "pro"}, Default: "free"},
		{Name: "trial_ends_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_tier",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysesTable,
		AnalyticsConnectionsTable,
		ChangeCheckpointsTable,
		ChangeLifecycleEventsTable,
		DeploysTable,
		DetectedChangesTable,
		OutcomeFeedbacksTable,
		PagesTable,
		TrackedSuggestionsTable,
		UsersTable,
	}
)

func init() {
	AnalysesTable.ForeignKeys[0].RefTable = PagesTable
	AnalyticsConnectionsTable.ForeignKeys[0].RefTable = UsersTable
	ChangeCheckpointsTable.ForeignKeys[0].RefTable = DetectedChangesTable
	ChangeLifecycleEventsTable.ForeignKeys[0].RefTable = DetectedChangesTable
	DeploysTable.ForeignKeys[0].RefTable = UsersTable
	DetectedChangesTable.ForeignKeys[0].RefTable = PagesTable
	OutcomeFeedbacksTable.ForeignKeys[0].RefTable = DetectedChangesTable
	PagesTable.ForeignKeys[0].RefTable = UsersTable
	TrackedSuggestionsTable.ForeignKeys[0].RefTable = PagesTable
}
