package usecase

var CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable

type RuleVerdictRecordForTest = ruleVerdictRecord
