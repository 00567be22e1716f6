package nlrb

const (
	docketSectionSelector       = "#case_docket_activity_data table"
	allegationsSelector         = "#case_allegations_data > ul > li, #case_allegations_data > ol > li"
	participantsSectionSelector = "#case_participants_data table"
	electionsSectionSelector    = "#case_elections_data"

	tableHeaderCellRelativeToTableXPath = "//tr[th]//th"
	tableRowRelativeToTableXPath        = "//tr[td]"
	tableCellRelativeToTableRowXPath    = "/td"
)
