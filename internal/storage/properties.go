package storage

// Property names of the hosted collections.
const (
	propStatus    = "상태"
	propEmail     = "이메일"
	propCompleted = "입력완료√"
	propCampaign  = "캠페인"

	propBrandName     = "브랜드명"
	propBrandPhone    = "전화번호"
	propBrandIndustry = "업종"
	propBrandChannel  = "유입경로"
	propBrandContact  = "브랜드 담당자"
	propBrandAccount  = "계좌 정보"

	propInfluencerName    = "이름"
	propInfluencerPhone   = "연락처"
	propFollowers         = "팔로워 수"
	propInstagram         = "인스타그램 프로필"
	propTier              = "등급"
	propCategories        = "활동 분야"
	propContentTypes      = "제작 가능한 콘텐츠 유형"
	propCreatorType       = "크리에이터 유형"
	propCompensation      = "희망 보상"
	propConsent           = "개인정보 수집 및 이용 동의"
	propInfluencerCreated = "생성 일시"

	propCampaignName      = "캠페인명"
	propCampaignType      = "캠페인 유형"
	propCampaignCategory  = "카테고리"
	propStartDate         = "캠페인 시작일"
	propEndDate           = "캠페인 종료일"
	propBudget            = "예산(만원)"
	propTargetHeadcount   = "목표 인원"
	propParticipants      = "캠페인 총 참여 인원"
	propLimit             = "리밋"
	propMentionID         = "맨션 ID"
	propBrandAccountURL   = "브랜드 계정"
	propAffiliateLink     = "제휴 링크"
	propSponsoredProducts = "협찬 제품"
	propMemo              = "메모"
	propStaff             = "담당자"
	propTotalLikes        = "총 좋아요 수"
	propTotalComments     = "총 댓글 수"
	propTotalShares       = "총 공유 수"
	propTotalMentions     = "총 맨션 피드 수"
	propTotalVideoPlays   = "비디오 총 재생수"
	propTotalSales        = "총 판매수"

	propReportDate       = "날짜"
	propReportDateText   = "날짜 텍스트"
	propReportLikes      = "좋아요 수"
	propReportComments   = "댓글 수"
	propReportShares     = "공유 수"
	propReportMentions   = "맨션 수"
	propReportVideoPlays = "재생 수"

	propMentionUsername  = "아이디"
	propMentionFullName  = "이름"
	propMentionLikes     = "좋아요 수"
	propMentionComments  = "댓글 수"
	propMentionShares    = "공유 수"
	propMentionPlays     = "재생 수"
	propMentionPostDate  = "게시일"
	propMentionURL       = "게시물 URL"
	propMentionThumbnail = "썸네일"
)
