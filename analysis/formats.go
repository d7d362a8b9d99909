package analysis

// Reply shapes embedded in prompts. Each one mirrors a models type.

const keywordFormat = `{
  "primaryKeywords": ["keyword1", "keyword2", "keyword3"],
  "longTailKeywords": ["long tail keyword 1", "long tail keyword 2"],
  "brandKeywords": ["brand related keyword 1", "brand related keyword 2"],
  "categoryKeywords": ["category keyword 1", "category keyword 2"],
  "competitorKeywords": ["competitor keyword 1", "competitor keyword 2"],
  "searchVolumeEstimate": {"high": ["high volume keywords"], "medium": ["medium volume keywords"], "low": ["low volume keywords"]},
  "keywordDifficulty": {"easy": ["easy to rank keywords"], "medium": ["medium difficulty keywords"], "hard": ["hard to rank keywords"]},
  "seasonalKeywords": ["seasonal keyword 1", "seasonal keyword 2"],
  "buyerIntentKeywords": ["buy intent keyword 1", "buy intent keyword 2"],
  "rankingStrategy": {"immediate": ["keywords to target immediately"], "shortTerm": ["keywords for 1-3 months"], "longTerm": ["keywords for 6+ months"]},
  "contentOptimization": {"titleSuggestions": ["optimized title suggestion"], "bulletPointKeywords": ["keyword for bullet 1"], "backendKeywords": ["backend keyword 1"]}
}
`

const competitorFormat = `{
  "competitivePosition": {"strengths": ["strength 1"], "weaknesses": ["weakness 1"], "opportunities": ["opportunity 1"]},
  "pricingStrategy": {"currentPosition": "premium|competitive|budget", "recommendation": "pricing recommendation", "priceRange": "suggested price range"},
  "keywordGaps": ["keyword gap 1"],
  "competitorKeywords": ["competitor keyword 1"],
  "differentiationStrategy": ["differentiation point 1"],
  "marketingAngles": ["marketing angle 1"],
  "improvementAreas": ["improvement area 1"]
}
`

const adKeywordsFormat = `{
  "exactMatch": {"high_priority": ["exact keyword 1"], "medium_priority": ["exact keyword 2"], "low_priority": ["exact keyword 3"]},
  "phraseMatch": {"high_priority": ["phrase keyword 1"], "medium_priority": ["phrase keyword 2"], "low_priority": ["phrase keyword 3"]},
  "broadMatch": {"high_priority": ["broad keyword 1"], "medium_priority": ["broad keyword 2"], "low_priority": ["broad keyword 3"]},
  "negativeKeywords": ["negative keyword 1"],
  "campaignStrategy": {"launchCampaign": ["keywords for launch"], "scalingCampaign": ["keywords for scaling"], "defensiveCampaign": ["brand protection keywords"]},
  "bidRecommendations": {"highBid": ["high bid keywords"], "mediumBid": ["medium bid keywords"], "lowBid": ["low bid keywords"]}
}
`

const salesStrategyFormat = `{
  "immediateActions": [{"action": "action description", "impact": "expected impact", "timeframe": "1-2 weeks"}],
  "shortTermStrategy": [{"action": "action description", "impact": "expected impact", "timeframe": "1-3 months"}],
  "longTermStrategy": [{"action": "action description", "impact": "expected impact", "timeframe": "3-6 months"}],
  "listingOptimization": {"title": "optimized title suggestion", "bulletPoints": ["bullet point 1"], "description": "optimized description strategy", "images": ["image improvement 1"]},
  "pricingStrategy": {"currentAnalysis": "pricing analysis", "recommendation": "pricing recommendation", "promotionalStrategy": "promotional strategy"},
  "reviewStrategy": {"targetReviewCount": "target number", "reviewAcquisitionPlan": ["plan step 1"], "qualityImprovements": ["improvement 1"]},
  "inventoryManagement": {"stockLevels": "stock level recommendation", "seasonalPlanning": "seasonal strategy", "demandForecasting": "demand forecast insights"}
}
`

const salesProblemsFormat = `{
  "criticalMistakes": [{"mistake": "specific mistake description", "impact": "how this affects sales", "severity": "high|medium|low", "solution": "specific fix needed"}],
  "pricingIssues": {"problem": "pricing problem description", "competitorPriceRange": "competitor price analysis", "recommendedPrice": "suggested price", "pricingStrategy": "pricing strategy recommendation"},
  "listingProblems": {"titleIssues": ["title problem 1"], "imageProblems": ["image issue 1"], "descriptionIssues": ["description problem 1"], "bulletPointIssues": ["bullet point issue 1"]},
  "keywordMistakes": {"missingKeywords": ["important keyword 1"], "wrongKeywords": ["ineffective keyword 1"], "keywordGaps": ["keyword gap 1"], "competitorKeywords": ["competitor keyword 1"]},
  "competitiveDisadvantages": [{"area": "disadvantage area", "yourStatus": "your current status", "competitorStatus": "competitor advantage", "actionNeeded": "what to do"}],
  "trustSignals": {"missing": ["missing trust signal 1"], "weak": ["weak trust signal 1"], "improvements": ["improvement 1"]},
  "conversionKillers": [{"issue": "conversion killer description", "fix": "how to fix it", "priority": "high|medium|low"}],
  "immediateActions": [{"action": "immediate action needed", "expectedImpact": "expected sales impact", "timeToImplement": "implementation time", "difficulty": "easy|medium|hard"}]
}

Focus on actionable insights that will directly improve sales performance.
`

const keywordGapsFormat = `{
  "missingHighValueKeywords": [{"keyword": "missing keyword", "searchVolume": "high|medium|low", "competition": "high|medium|low", "opportunity": "why this keyword is important", "whereToUse": "title|bullets|description|backend"}],
  "competitorKeywordAdvantages": [{"competitor": "competitor name", "keywordAdvantage": "keyword they use", "whyItWorks": "why this keyword helps them", "howToAdopt": "how you can use it"}],
  "keywordOptimizationPlan": {"titleKeywords": ["keyword for title"], "bulletKeywords": ["keyword for bullets"], "descriptionKeywords": ["keyword for description"], "backendKeywords": ["backend keyword"]},
  "rankingOpportunities": [{"keyword": "opportunity keyword", "currentRanking": "estimated current position", "targetRanking": "target position", "difficulty": "easy|medium|hard", "strategy": "how to rank for this keyword"}]
}
`

const listingOptimizationFormat = `{
  "optimizedTitle": {"newTitle": "optimized title suggestion", "improvements": ["improvement 1"], "keywordsAdded": ["keyword 1"], "charactersUsed": "character count"},
  "optimizedBulletPoints": [{"bulletPoint": "optimized bullet point text", "focus": "what this bullet emphasizes", "keywords": ["keywords in this bullet"]}],
  "optimizedDescription": {"newDescription": "optimized product description", "structure": "description structure explanation", "keywordsIncluded": ["keyword 1"]},
  "imageRecommendations": [{"imageType": "main|lifestyle|infographic|comparison", "description": "what this image should show", "priority": "high|medium|low"}],
  "pricingOptimization": {"recommendedPrice": "suggested price", "pricingReason": "why this price", "competitivePosition": "how it compares to competitors"},
  "a9AlgorithmOptimization": {"primaryKeywords": ["main keyword 1"], "secondaryKeywords": ["secondary keyword 1"], "keywordDensity": "keyword density recommendations", "rankingFactors": ["ranking factor 1"]}
}
`

const optimizedListingFormat = `{
  "optimizedTitle": {"title": "SEO-optimized title under 200 characters", "keywordsUsed": ["keyword1", "keyword2"], "charactersUsed": "character count", "whyOptimal": "explanation of title strategy"},
  "bulletPoints": [{"bulletPoint": "benefit-led bullet under 250 characters", "focus": "what this bullet emphasizes", "keywords": ["keywords used"], "competitiveAdvantage": "how this beats competitors", "emotionalTrigger": "emotion addressed", "proofElement": "evidence or social proof"}],
  "productDescription": {"shortDescription": "two sentence summary", "detailedDescription": "full description", "description": "complete HTML-free description", "structure": "description structure", "keywordsIncluded": ["keyword 1"], "seoStrategy": "keyword placement strategy", "emotionalHooks": ["hook 1"], "socialProof": "social proof element", "callToAction": "closing call to action"},
  "backendKeywords": {"searchTerms": ["search term 1"], "totalCharacters": "character count under 250 bytes", "strategy": "backend keyword strategy"},
  "competitorKeywordAnalysis": {
    "mostUsedKeywords": [{"keyword": "keyword", "frequency": "how many competitors use it", "avgRating": "average rating of those competitors", "opportunity": "how to use it"}],
    "highConvertingKeywords": [{"keyword": "keyword", "competitorRating": "rating", "competitorReviews": "review count", "whyEffective": "why it converts"}],
    "longTailOpportunities": [{"keyword": "long tail keyword", "competition": "low|medium|high", "searchIntent": "buyer intent", "howToUse": "placement advice"}],
    "keywordGaps": [{"keyword": "keyword", "competitorUsage": "who uses it", "yourAdvantage": "why you can win it"}],
    "categoryKeywords": ["category keyword"], "featureKeywords": ["feature keyword"], "benefitKeywords": ["benefit keyword"]
  },
  "competitivePositioning": {"priceStrategy": "pricing position", "differentiators": ["differentiator 1"], "targetKeywords": ["target keyword 1"], "rankingStrategy": "how to outrank competitors"},
  "imageRecommendations": [{"imageType": "main|lifestyle|infographic|comparison", "description": "what this image should show", "priority": "high|medium|low", "competitiveEdge": "why it beats competitor images"}],
  "launchStrategy": {"phase1": ["week 1-2 action"], "phase2": ["week 3-4 action"], "phase3": ["month 2+ action"], "keyMetrics": ["metric 1"]}
}
`

const insightsFormat = `{
  "marketGaps": [{"gap": "market gap description", "opportunity": "how to exploit it", "difficulty": "easy|medium|hard", "impact": "high|medium|low"}],
  "competitorWeaknesses": [{"competitor": "competitor name", "weakness": "weakness description", "howToExploit": "how to take advantage", "keywords": ["related keywords"]}],
  "pricingAnalysis": {"averagePrice": "average competitor price", "priceRange": "price range", "recommendedPrice": "recommended launch price", "pricingStrategy": "pricing strategy"},
  "keywordOpportunities": [{"keyword": "keyword", "searchVolume": "high|medium|low", "competition": "high|medium|low", "whyOpportunity": "why this is an opportunity", "howToRank": "how to rank"}],
  "differentiationStrategy": {"primaryDifferentiators": ["differentiator 1"], "messagingStrategy": "messaging strategy", "targetKeywords": ["keyword 1"], "competitiveAdvantages": ["advantage 1"]},
  "launchTiming": {"bestTimeToLaunch": "timing recommendation", "seasonalFactors": "seasonal considerations", "marketConditions": "market conditions", "competitiveActivity": "competitor activity"}
}
`

const launchPlanFormat = `{
  "prelaunchPhase": {"duration": "2-4 weeks before launch", "tasks": [{"task": "task description", "timeline": "when to do it", "priority": "high|medium|low", "expectedOutcome": "expected result"}]},
  "launchWeek": {"duration": "Week 1", "dailyTasks": {"day1": ["task 1"], "day2": ["task 2"], "day7": ["task 3"]}, "keyMetrics": ["metric 1"], "successCriteria": ["criterion 1"]},
  "month1Strategy": {"duration": "Weeks 2-4", "weeklyGoals": [{"week": "Week 2", "goals": ["goal 1"], "actions": ["action 1"]}], "advertisingStrategy": {"budget": "budget recommendation", "campaigns": ["campaign type"], "targetKeywords": ["keyword 1"]}},
  "month2_3Strategy": {"duration": "Months 2-3", "objectives": ["objective 1"], "scalingStrategy": ["scaling tactic 1"], "optimizationFocus": ["focus area 1"]},
  "budgetAllocation": {"advertising": "percentage", "inventory": "percentage", "promotions": "percentage", "contingency": "percentage"},
  "riskMitigation": [{"risk": "risk description", "probability": "high|medium|low", "impact": "high|medium|low", "mitigation": "mitigation strategy"}],
  "successMetrics": {"week1Targets": {"sales": "target", "ranking": "target"}, "month1Targets": {"sales": "target", "ranking": "target"}, "month3Targets": {"sales": "target", "ranking": "target"}}
}
`
